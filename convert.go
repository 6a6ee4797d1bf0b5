package linalg

// Precision conversions. Single- and double-precision types never mix
// implicitly; these are the explicit casts between them.

// ConvertVec3 sets dst to src cast element-wise to D.
func ConvertVec3[D, S Float](dst *Vec3[D], src *Vec3[S]) *Vec3[D] {
	for i := range src {
		dst[i] = D(src[i])
	}
	return dst
}

// ConvertVec4 sets dst to src cast element-wise to D.
func ConvertVec4[D, S Float](dst *Vec4[D], src *Vec4[S]) *Vec4[D] {
	for i := range src {
		dst[i] = D(src[i])
	}
	return dst
}

// ConvertMat3 sets dst to src cast element-wise to D.
func ConvertMat3[D, S Float](dst *Mat3[D], src *Mat3[S]) *Mat3[D] {
	for i := range src {
		dst[i] = D(src[i])
	}
	return dst
}

// ConvertMat4 sets dst to src cast element-wise to D.
func ConvertMat4[D, S Float](dst *Mat4[D], src *Mat4[S]) *Mat4[D] {
	for i := range src {
		dst[i] = D(src[i])
	}
	return dst
}
