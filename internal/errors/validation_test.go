package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/delver-sim/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("store", "is required")
	ve.AddFieldError("max_event_depth", "must be between 1 and 1024")

	s.True(ve.HasErrors())
	s.Equal("validation failed: max_event_depth: must be between 1 and 1024; store: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("turns", "must be at least %d", 1).
		RequiredField("team").
		InvalidField("store", "unknown backend")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "store: is invalid: unknown backend")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "crabs", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("depth", 0, 1, 10, vb)
	s.Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("depth", 10, 1, 10, vb)
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("store", "postgres", []string{"redis", "sqlite"}, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "must be one of: redis, sqlite")
}
