package commands

import (
	"errors"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrCustomerIsRequired    = errors.New("customer is required")
)

// OrderVariantInput is one variant line of a multi-variant order.
type OrderVariantInput struct {
	Name  string
	Units int
}

// CreateOrderCommand represents marketing registering a new manufacturing
// order. The order enters the pipeline in GraphicsPending status.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	customer    string
	product     string
	category    order.Category
	units       int
	variants    []OrderVariantInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order. Either a
// plain unit count or a variant breakdown must be supplied; when variants are
// present the unit count is derived from them.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customer string,
	product string,
	category order.Category,
	units int,
	variants []OrderVariantInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		product:  product,
		variants: variants,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setCustomer(customer),
		cmd.setCategory(category),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.units = units
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// OrderNumber returns the human-facing sequential order code.
func (c CreateOrderCommand) OrderNumber() string { return c.orderNumber }

// Customer returns the customer name.
func (c CreateOrderCommand) Customer() string { return c.customer }

// Product returns the product description.
func (c CreateOrderCommand) Product() string { return c.product }

// Category returns the order category.
func (c CreateOrderCommand) Category() order.Category { return c.category }

// Units returns the plain unit count, ignored when variants are present.
func (c CreateOrderCommand) Units() int { return c.units }

// Variants returns the variant breakdown, empty for plain orders.
func (c CreateOrderCommand) Variants() []OrderVariantInput { return c.variants }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setCategory(category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}
