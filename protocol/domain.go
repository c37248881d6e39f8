package protocol

import "math/big"

// Domain describes the multiplicative subgroup of size n = 2^K used to
// index the Lagrange basis and vanishing polynomial of the protocol. It
// carries the raw field modulus and generator as big.Int so any loader
// backend can fold a rotation into a scalar without depending on a
// particular curve's field type.
type Domain struct {
	K         int
	N         uint64
	Generator *big.Int
	Modulus   *big.Int
}

// NewDomain builds a Domain for a subgroup of size 2^k with the given
// generator, reduced modulo modulus.
func NewDomain(k int, generator, modulus *big.Int) *Domain {
	return &Domain{
		K:         k,
		N:         uint64(1) << uint(k),
		Generator: new(big.Int).Mod(generator, modulus),
		Modulus:   new(big.Int).Set(modulus),
	}
}

// RotateScalar computes s * omega^r mod Modulus, following negative
// rotations via the generator's modular inverse.
func (d *Domain) RotateScalar(s *big.Int, r Rotation) *big.Int {
	power := d.omegaPow(r)
	out := new(big.Int).Mul(s, power)
	return out.Mod(out, d.Modulus)
}

// omegaPow returns omega^r mod Modulus for a (possibly negative) rotation.
func (d *Domain) omegaPow(r Rotation) *big.Int {
	if r >= 0 {
		return new(big.Int).Exp(d.Generator, big.NewInt(int64(r)), d.Modulus)
	}
	inv := new(big.Int).ModInverse(d.Generator, d.Modulus)
	return new(big.Int).Exp(inv, big.NewInt(int64(-r)), d.Modulus)
}
