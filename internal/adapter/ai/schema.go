package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aviniti/ai-tools-api/internal/domain"
)

// SchemaValidator decodes extracted model JSON into typed responses and
// enforces the response bounds. Validation failures wrap
// domain.ErrSchemaInvalid so callers surface them as AI_UNAVAILABLE without
// ever leaking the raw model text.
type SchemaValidator struct {
	validate *validator.Validate
}

func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{validate: validator.New()}
}

func (sv *SchemaValidator) DecodeDiscover(raw json.RawMessage) (*domain.DiscoverResponse, error) {
	var out domain.DiscoverResponse
	if err := sv.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (sv *SchemaValidator) DecodeAnalysis(raw json.RawMessage) (*domain.AnalysisResponse, error) {
	var out domain.AnalysisResponse
	if err := sv.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (sv *SchemaValidator) DecodeEstimateCreative(raw json.RawMessage) (*domain.EstimateCreative, error) {
	var out domain.EstimateCreative
	if err := sv.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (sv *SchemaValidator) DecodeROI(raw json.RawMessage) (*domain.ROIResponse, error) {
	var out domain.ROIResponse
	if err := sv.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (sv *SchemaValidator) decode(raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedOutput, err)
	}
	if err := sv.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", domain.ErrSchemaInvalid, describeFields(verrs))
		}
		return fmt.Errorf("%w: %v", domain.ErrSchemaInvalid, err)
	}
	return nil
}

// describeFields renders field paths and failed rules without echoing any
// field values.
func describeFields(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		parts = append(parts, path+" failed "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}
