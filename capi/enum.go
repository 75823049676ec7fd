package capi

import (
	"errors"
	"fmt"

	"github.com/gogpu/vc"
)

// ErrInvalidEnum is wrapped by the panic raised for a fill rule, extend
// mode or image quality outside its defined range.
var ErrInvalidEnum = errors.New("vc: invalid enum value")

// FillRuleOf converts a C fill rule value. It panics with ErrInvalidEnum
// for values other than VC_FILL_WINDING and VC_FILL_EVEN_ODD.
func FillRuleOf(v uint32) vc.FillRule {
	if v > uint32(vc.FillEvenOdd) {
		panic(fmt.Errorf("%w: fill rule %d", ErrInvalidEnum, v))
	}
	return vc.FillRule(v)
}

// ExtendOf converts a C extend value. It panics with ErrInvalidEnum for
// values other than VC_EXTEND_PAD, VC_EXTEND_REPEAT and VC_EXTEND_REFLECT.
func ExtendOf(v uint32) vc.Extend {
	if v > uint32(vc.ExtendReflect) {
		panic(fmt.Errorf("%w: extend %d", ErrInvalidEnum, v))
	}
	return vc.Extend(v)
}

// ImageQualityOf converts a C image quality value. It panics with
// ErrInvalidEnum for values above VC_IMAGE_QUALITY_HIGH.
func ImageQualityOf(v uint32) vc.ImageQuality {
	if v > uint32(vc.QualityHigh) {
		panic(fmt.Errorf("%w: image quality %d", ErrInvalidEnum, v))
	}
	return vc.ImageQuality(v)
}
