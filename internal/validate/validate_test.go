package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-concerts/internal/models"
	"ms-concerts/internal/validate"
)

func TestStructValid(t *testing.T) {
	req := models.OrderRequest{
		TotalAmount:   10150,
		PaymentMethod: "gcash",
		TicketItems:   []models.TicketItemInput{{TicketTypeID: 1, Quantity: 2, UnitPrice: 5000}},
	}
	assert.Nil(t, validate.Struct(req))
}

func TestStructCollectsAllFailures(t *testing.T) {
	req := models.OrderRequest{TotalAmount: -1}
	errs := validate.Struct(req)
	require.NotEmpty(t, errs)

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "totalAmount")
	assert.Equal(t, "is required", fields["paymentMethod"])
	assert.Contains(t, fields, "ticketItems")
}

func TestStructNestedFieldPath(t *testing.T) {
	req := models.OrderRequest{
		TotalAmount:   100,
		PaymentMethod: "card",
		TicketItems:   []models.TicketItemInput{{TicketTypeID: 1, Quantity: 0, UnitPrice: 50}},
	}
	errs := validate.Struct(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "ticketItems[0].quantity", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
}

func TestStructUserInput(t *testing.T) {
	errs := validate.Struct(models.UserInput{Username: "juan", Password: "short", Email: "not-an-email"})
	require.NotEmpty(t, errs)

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "must be at least 6 characters", fields["password"])
	assert.Contains(t, fields, "fullName")
	assert.Equal(t, "must be a valid email address", fields["email"])
}
