package model

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Field identifies a label field that can be claimed and verified
type Field string

const (
	FieldBrandName         Field = "brandName"         // Producer/brand name as printed on the label
	FieldProductClassType  Field = "productClassType"  // Class/type designation (e.g., "Kentucky Straight Bourbon Whiskey")
	FieldAlcoholContent    Field = "alcoholContent"    // ABV percentage
	FieldNetContents       Field = "netContents"       // Volume with unit (e.g., "750 ML")
	FieldGovernmentWarning Field = "governmentWarning" // Pseudo-field: mandatory warning text, no user claim
)

// RequiredFields lists the four caller-supplied claims, in check order
var RequiredFields = []Field{
	FieldBrandName,
	FieldProductClassType,
	FieldAlcoholContent,
	FieldNetContents,
}

// Claims carries the full set of label claims for one verification request.
// BottlerNameAddress and GovernmentWarningAcknowledged are accepted for
// form parity but not consulted by the comparison engine.
type Claims struct {
	BrandName                     string `json:"brandName" form:"brandName" validate:"required,min=1"`
	ProductClassType              string `json:"productClassType" form:"productClassType" validate:"required,min=1"`
	AlcoholContent                string `json:"alcoholContent" form:"alcoholContent" validate:"required,abv"`
	NetContents                   string `json:"netContents" form:"netContents" validate:"required,netcontents"`
	BottlerNameAddress            string `json:"bottlerNameAddress,omitempty" form:"bottlerNameAddress"`
	GovernmentWarningAcknowledged bool   `json:"governmentWarningAcknowledged,omitempty" form:"governmentWarningAcknowledged"`
}

// Claim formats accepted from the caller: ABV is digits with an optional
// percent sign, net contents is digits plus a unit token
var (
	abvClaimPattern         = regexp.MustCompile(`^\d+(\.\d+)?%?$`)
	netContentsClaimPattern = regexp.MustCompile(`(?i)^\d+\s?(ML|L|FL\.?\s?OZ|OZ)$`)
)

// Validate validates the claim set using the validator.
func (c *Claims) Validate() error {
	validate := validator.New()
	_ = validate.RegisterValidation("abv", func(fl validator.FieldLevel) bool {
		return abvClaimPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("netcontents", func(fl validator.FieldLevel) bool {
		return netContentsClaimPattern.MatchString(fl.Field().String())
	})
	return validate.Struct(c)
}

// Get returns the claim value for one of the four required fields
func (c *Claims) Get(field Field) string {
	switch field {
	case FieldBrandName:
		return c.BrandName
	case FieldProductClassType:
		return c.ProductClassType
	case FieldAlcoholContent:
		return c.AlcoholContent
	case FieldNetContents:
		return c.NetContents
	default:
		return ""
	}
}
