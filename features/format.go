package features

import (
	"math/big"
	"strconv"
)

// fixed1 formats x with one decimal place. Ties on the exact binary value
// round up, e.g. 0.25 -> "0.3", which strconv's round-half-even would print
// as "0.2".
func fixed1(x float64) string {
	sign := ""
	if x < 0 {
		sign, x = "-", -x
	}
	f := new(big.Float).SetPrec(128).SetFloat64(x)
	f.Mul(f, big.NewFloat(10))
	f.Add(f, big.NewFloat(0.5))
	n, _ := f.Int(nil)
	v := n.Int64()
	return sign + strconv.FormatInt(v/10, 10) + "." + strconv.FormatInt(v%10, 10)
}
