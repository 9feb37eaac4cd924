package roll_test

import (
	"testing"
	"unicode/utf8"

	"pressflow/internal/core/domain/model/roll"

	"github.com/stretchr/testify/assert"
)

func TestMaterialShortCode(t *testing.T) {
	t.Run("should take the first three letters of the first word", func(t *testing.T) {
		assert.Equal(t, "KUS", roll.MaterialShortCode("Kuse White"))
		assert.Equal(t, "PP", roll.MaterialShortCode("PP White 60cm"))
	})

	t.Run("should shorten single-word names", func(t *testing.T) {
		assert.Equal(t, "OPP", roll.MaterialShortCode("oppfilm"))
		assert.Equal(t, "PE", roll.MaterialShortCode("pe"))
	})

	t.Run("should keep multibyte names valid", func(t *testing.T) {
		assert.Equal(t, "KUŞ", roll.MaterialShortCode("Kuşe Beyaz"))
		assert.True(t, utf8.ValidString(roll.MaterialShortCode("Şeffaf")))
		assert.Equal(t, "ŞEF", roll.MaterialShortCode("Şeffaf"))
	})

	t.Run("should fall back for empty names", func(t *testing.T) {
		assert.Equal(t, "MAT", roll.MaterialShortCode(""))
	})
}

func TestNextBarcode(t *testing.T) {
	t.Run("should start a fresh sequence at 0001", func(t *testing.T) {
		barcode := roll.NextBarcode("PF", "Kuse White", nil)

		assert.Equal(t, "PF-KUS-0001", barcode)
	})

	t.Run("should continue from the highest existing number", func(t *testing.T) {
		existing := []string{"PF-KUS-0001", "PF-KUS-0017", "PF-KUS-0005"}

		barcode := roll.NextBarcode("PF", "Kuse White", existing)

		assert.Equal(t, "PF-KUS-0018", barcode)
	})

	t.Run("should ignore barcodes of other prefixes", func(t *testing.T) {
		existing := []string{"PF-OPP-0009", "ZZ-KUS-0044"}

		barcode := roll.NextBarcode("PF", "Kuse White", existing)

		assert.Equal(t, "PF-KUS-0001", barcode)
	})

	t.Run("should use the XX prefix when the supplier has none", func(t *testing.T) {
		barcode := roll.NextBarcode("", "Kuse White", nil)

		assert.Equal(t, "XX-KUS-0001", barcode)
	})
}
