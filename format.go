package linalg

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"
)

// Text layout: every element is printed with %10.3f, vectors as
// "vec3f( ... )" and matrices as a "matrix:" header followed by one line
// per row, independent of the column-major storage.

const elemFormat = "%10.3f "

type sprintfFunc func(format string, a ...any) string

// printerSprintf adapts p to sprintfFunc. message.Printer takes a
// message.Reference key rather than a plain format string.
func printerSprintf(p *message.Printer) sprintfFunc {
	return func(format string, a ...any) string {
		return p.Sprintf(format, a...)
	}
}

func precisionSuffix[T Float]() byte {
	if isSingle[T]() {
		return 'f'
	}
	return 'd'
}

func formatVec[T Float](sprintf sprintfFunc, v []T) string {
	var b strings.Builder
	b.WriteString(sprintf("vec%d%c(", len(v), precisionSuffix[T]()))
	for _, x := range v {
		b.WriteString(sprintf(elemFormat, float64(x)))
	}
	b.WriteByte(')')
	return b.String()
}

func formatMat[T Float](sprintf sprintfFunc, m []T, n int) string {
	var b strings.Builder
	b.WriteString("matrix:")
	for row := 0; row < n; row++ {
		b.WriteByte('\n')
		for col := 0; col < n; col++ {
			b.WriteString(sprintf(elemFormat, float64(m[Index(row, col, n)])))
		}
	}
	return b.String()
}

func (v Vec3[T]) String() string { return formatVec(fmt.Sprintf, v[:]) }
func (v Vec4[T]) String() string { return formatVec(fmt.Sprintf, v[:]) }
func (m Mat3[T]) String() string { return formatMat(fmt.Sprintf, m[:], 3) }
func (m Mat4[T]) String() string { return formatMat(fmt.Sprintf, m[:], 4) }

// Sprint formats v like String using p, so that numbers follow p's locale
// (for example a decimal comma for language.German).
func (v *Vec3[T]) Sprint(p *message.Printer) string { return formatVec(printerSprintf(p), v[:]) }

// Sprint formats v like String using p.
func (v *Vec4[T]) Sprint(p *message.Printer) string { return formatVec(printerSprintf(p), v[:]) }

// Sprint formats m like String using p.
func (m *Mat3[T]) Sprint(p *message.Printer) string { return formatMat(printerSprintf(p), m[:], 3) }

// Sprint formats m like String using p.
func (m *Mat4[T]) Sprint(p *message.Printer) string { return formatMat(printerSprintf(p), m[:], 4) }
