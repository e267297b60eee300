package request

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Email:           "user@example.com",
		Password:        "password1",
		ConfirmPassword: "password1",
		Name:            "User",
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("missing email", func(t *testing.T) {
		req := valid
		req.Email = ""
		assert.Error(t, req.Validate())
	})

	t.Run("password without digit", func(t *testing.T) {
		req := valid
		req.Password = "passwordonly"
		req.ConfirmPassword = "passwordonly"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("password too short", func(t *testing.T) {
		req := valid
		req.Password = "pass1"
		req.ConfirmPassword = "pass1"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("confirm mismatch", func(t *testing.T) {
		req := valid
		req.ConfirmPassword = "password2"
		assert.ErrorIs(t, req.Validate(), errConfirmPasswordMismatch)
	})
}

func TestRegistrationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegistrationRequest
		wantErr bool
	}{
		{name: "individual", req: RegistrationRequest{Type: "individual", Attendees: 1}},
		{name: "group", req: RegistrationRequest{Type: "group", Attendees: 4}},
		{name: "unknown type", req: RegistrationRequest{Type: "family", Attendees: 3}, wantErr: true},
		{name: "missing attendees", req: RegistrationRequest{Type: "group"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArtPieceRequest_Validate(t *testing.T) {
	valid := ArtPieceRequest{
		Title:          "Dawn Prints",
		Category:       "Nature",
		EstimatedValue: decimal.NewFromInt(100),
		Quantity:       3,
		ArtistID:       1,
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("negative estimated value", func(t *testing.T) {
		req := valid
		req.EstimatedValue = decimal.NewFromInt(-1)
		assert.ErrorContains(t, req.Validate(), "must be zero or greater")
	})

	t.Run("unknown category", func(t *testing.T) {
		req := valid
		req.Category = "Sculpture"
		assert.Error(t, req.Validate())
	})

	t.Run("missing artist", func(t *testing.T) {
		req := valid
		req.ArtistID = 0
		assert.Error(t, req.Validate())
	})
}

func TestCheckoutRequest_Validate(t *testing.T) {
	t.Run("pickup needs no address", func(t *testing.T) {
		req := CheckoutRequest{OrderType: "pickup"}
		assert.NoError(t, req.Validate())
	})

	t.Run("delivery needs an address", func(t *testing.T) {
		req := CheckoutRequest{OrderType: "delivery"}
		assert.ErrorIs(t, req.Validate(), errMissingDeliveryAddress)
	})

	t.Run("delivery with address", func(t *testing.T) {
		req := CheckoutRequest{OrderType: "delivery", DeliveryAddress: "12 Gallery Lane"}
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown order type", func(t *testing.T) {
		req := CheckoutRequest{OrderType: "courier"}
		assert.Error(t, req.Validate())
	})
}

func TestAddToCartRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := AddToCartRequest{ArtPieceID: 1, Quantity: 2}
		assert.NoError(t, req.Validate())
	})

	t.Run("zero quantity", func(t *testing.T) {
		req := AddToCartRequest{ArtPieceID: 1}
		assert.Error(t, req.Validate())
	})

	t.Run("missing art piece", func(t *testing.T) {
		req := AddToCartRequest{Quantity: 1}
		assert.Error(t, req.Validate())
	})
}
