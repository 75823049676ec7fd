package capi

import "github.com/gogpu/vc"

// TransformIdentity mirrors vc_transform_identity.
func TransformIdentity() vc.Transform { return vc.Identity() }

// TransformScale mirrors vc_transform_scale.
func TransformScale(sx, sy float64) vc.Transform { return vc.Scale(sx, sy) }

// TransformTranslate mirrors vc_transform_translate.
func TransformTranslate(tx, ty float64) vc.Transform { return vc.Translate(tx, ty) }

// TransformRotate mirrors vc_transform_rotate. angle is in radians.
func TransformRotate(angle float64) vc.Transform { return vc.Rotate(angle) }

// TransformRotateAt mirrors vc_transform_rotate_at.
func TransformRotateAt(angle, cx, cy float64) vc.Transform { return vc.RotateAt(angle, cx, cy) }

// TransformCombine mirrors vc_transform_combine. The result applies t2
// first, then t1.
func TransformCombine(t1, t2 vc.Transform) vc.Transform { return vc.Combine(t1, t2) }
