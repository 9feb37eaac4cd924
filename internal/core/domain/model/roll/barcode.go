package roll

import (
	"fmt"
	"strconv"
	"strings"
)

// defaultSupplierPrefix is used when a supplier has no barcode prefix configured.
const defaultSupplierPrefix = "XX"

// MaterialShortCode derives the three-letter material code used in barcodes,
// e.g. "Kuse White" becomes "KUS". Single-word names take their first three
// characters.
func MaterialShortCode(materialName string) string {
	if materialName == "" {
		return "MAT"
	}
	upper := strings.ToUpper(materialName)
	if words := strings.Fields(upper); len(words) >= 2 {
		return firstN(words[0], 3)
	}
	return firstN(upper, 3)
}

// BarcodePrefix builds the supplier-and-material prefix of a roll barcode,
// e.g. "PF-KUS".
func BarcodePrefix(supplierPrefix, materialName string) string {
	if supplierPrefix == "" {
		supplierPrefix = defaultSupplierPrefix
	}
	return supplierPrefix + "-" + MaterialShortCode(materialName)
}

// NextBarcode generates the next sequential barcode for a supplier and
// material, in the form PREFIX-MAT-NNNN. The sequence continues from the
// highest number found among the existing barcodes sharing the same prefix.
func NextBarcode(supplierPrefix, materialName string, existingBarcodes []string) string {
	prefix := BarcodePrefix(supplierPrefix, materialName)

	maxNumber := 0
	for _, barcode := range existingBarcodes {
		if !strings.HasPrefix(barcode, prefix+"-") {
			continue
		}
		parts := strings.Split(barcode, "-")
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil && n > maxNumber {
			maxNumber = n
		}
	}

	return fmt.Sprintf("%s-%04d", prefix, maxNumber+1)
}

// firstN truncates by runes, material names are not always ASCII.
func firstN(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
