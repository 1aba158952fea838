package domain

import (
	"fmt"
	"strconv"
)

// Number es un float64 que acepta tanto números JSON como strings
// numéricos ("1500.50"), porque los formularios envían los montos
// como texto.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("valor numérico inválido: %q", raw)
	}
	*n = Number(value)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}
