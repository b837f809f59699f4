package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"epfactor/factor"
)

const (
	modeUnivariate int32 = 0
	modeBivariate  int32 = 1
)

// Encode serializes r into the FactorRepresentation interchange format:
// header (n, mode, k, m), per-row lengths, then for each row j its V_j
// indices followed by its b_ji coefficients, then for each row j its pi
// messages followed by its beta messages, and — for the bivariate
// extension — all k(j) values followed by one (a_j, c_j) pair per factor.
// Indices and coefficients are not written as two separate whole-matrix
// arrays, nor are all pi values written apart from all beta values.
func Encode(r *factor.Representation) ([]byte, error) {
	var buf bytes.Buffer

	bivariate := r.Mode() == factor.BivariatePrecision
	mode := modeUnivariate
	if bivariate {
		mode = modeBivariate
	}

	if err := writeInt32s(&buf, int32(r.NumVariables()), mode, int32(r.NumPrecVars()), int32(r.NumPotentials())); err != nil {
		return nil, err
	}

	m := r.NumPotentials()
	rowLens := make([]int32, m)
	for j := 0; j < m; j++ {
		s, err := r.RowSize(j)
		if err != nil {
			return nil, err
		}
		rowLens[j] = int32(s)
	}
	if err := writeInt32s(&buf, rowLens...); err != nil {
		return nil, err
	}

	for j := 0; j < m; j++ {
		vars, coefs, err := r.Row(j)
		if err != nil {
			return nil, err
		}
		for _, v := range vars {
			if err := writeInt32s(&buf, int32(v)); err != nil {
				return nil, err
			}
		}
		if err := writeFloat64s(&buf, coefs...); err != nil {
			return nil, err
		}
	}

	for j := 0; j < m; j++ {
		pi, beta, err := r.Messages(j)
		if err != nil {
			return nil, err
		}
		if err := writeFloat64s(&buf, pi...); err != nil {
			return nil, err
		}
		if err := writeFloat64s(&buf, beta...); err != nil {
			return nil, err
		}
	}

	if bivariate {
		for j := 0; j < m; j++ {
			k, err := r.PrecVar(j)
			if err != nil {
				return nil, err
			}
			if err := writeInt32s(&buf, int32(k)); err != nil {
				return nil, err
			}
		}
		for j := 0; j < m; j++ {
			a, c, err := r.PrecisionMessage(j)
			if err != nil {
				return nil, err
			}
			if err := writeFloat64s(&buf, a, c); err != nil {
				return nil, err
			}
		}
	}

	return buf.Bytes(), nil
}

// Decode reconstructs a factor.Representation from the byte stream Encode
// produces. It validates header consistency (non-negative lengths, a known
// mode tag) and surfaces truncation as ErrTruncated.
func Decode(data []byte) (*factor.Representation, error) {
	r := bytes.NewReader(data)

	n, mode, k, m, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	rowLens := make([]int32, m)
	if err := readInt32s(r, rowLens); err != nil {
		return nil, err
	}
	for _, l := range rowLens {
		if l < 0 {
			return nil, ErrNegativeLength
		}
	}

	rows := make([]factor.Row, m)
	for j := int32(0); j < m; j++ {
		s := int(rowLens[j])
		varsI32 := make([]int32, s)
		if err := readInt32s(r, varsI32); err != nil {
			return nil, err
		}
		vars := make([]int, s)
		for ii, v := range varsI32 {
			vars[ii] = int(v)
		}
		coefs := make([]float64, s)
		if err := readFloat64s(r, coefs); err != nil {
			return nil, err
		}
		rows[j] = factor.Row{Vars: vars, Coefs: coefs}
	}

	piAll := make([][]float64, m)
	betaAll := make([][]float64, m)
	for j := int32(0); j < m; j++ {
		s := int(rowLens[j])
		pi := make([]float64, s)
		if err := readFloat64s(r, pi); err != nil {
			return nil, err
		}
		beta := make([]float64, s)
		if err := readFloat64s(r, beta); err != nil {
			return nil, err
		}
		piAll[j] = pi
		betaAll[j] = beta
	}

	var kOf []int32
	var aAll, cAll []float64
	bivariate := mode == modeBivariate
	if bivariate {
		kOf = make([]int32, m)
		if err := readInt32s(r, kOf); err != nil {
			return nil, err
		}
		aAll = make([]float64, m)
		cAll = make([]float64, m)
		for j := int32(0); j < m; j++ {
			pair := make([]float64, 2)
			if err := readFloat64s(r, pair); err != nil {
				return nil, err
			}
			aAll[j] = pair[0]
			cAll[j] = pair[1]
		}
	}

	var rep *factor.Representation
	if bivariate {
		kOfInt := make([]int, m)
		for j, v := range kOf {
			kOfInt[j] = int(v)
		}
		rep, err = factor.NewBivariatePrecision(int(n), int(k), rows, kOfInt)
	} else {
		rep, err = factor.New(int(n), rows)
	}
	if err != nil {
		return nil, fmt.Errorf("wire: reconstructing representation: %w", err)
	}

	for j := int32(0); j < m; j++ {
		for ii := range piAll[j] {
			if err := rep.SetMessage(int(j), ii, piAll[j][ii], betaAll[j][ii]); err != nil {
				return nil, err
			}
		}
		if bivariate {
			if err := rep.SetPrecisionMessage(int(j), aAll[j], cAll[j]); err != nil {
				return nil, err
			}
		}
	}

	return rep, nil
}

func readHeader(r *bytes.Reader) (n, mode, k, m int32, err error) {
	fields := make([]int32, 4)
	if err := readInt32s(r, fields); err != nil {
		return 0, 0, 0, 0, err
	}
	n, mode, k, m = fields[0], fields[1], fields[2], fields[3]
	if n < 0 || k < 0 || m < 0 {
		return 0, 0, 0, 0, ErrNegativeLength
	}
	if mode != modeUnivariate && mode != modeBivariate {
		return 0, 0, 0, 0, ErrUnknownMode
	}

	return n, mode, k, m, nil
}

func writeInt32s(buf *bytes.Buffer, vs ...int32) error {
	for _, v := range vs {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	return nil
}

func writeFloat64s(buf *bytes.Buffer, vs ...float64) error {
	for _, v := range vs {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	return nil
}

func readInt32s(r *bytes.Reader, out []int32) error {
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrTruncated
		}

		return err
	}

	return nil
}

func readFloat64s(r *bytes.Reader, out []float64) error {
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrTruncated
		}

		return err
	}

	return nil
}
