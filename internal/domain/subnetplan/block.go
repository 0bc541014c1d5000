package subnetplan

import (
	"errors"
	"fmt"
	"net/netip"
)

// Width — разрядность адресного пространства IPv4.
const Width = 32

var (
	// ErrInvalidCIDR обозначает ошибку разбора CIDR-нотации.
	ErrInvalidCIDR = errors.New("invalid CIDR")
	// ErrNotAligned — адрес сети не выровнен по границе собственного префикса.
	ErrNotAligned = errors.New("address not aligned to prefix boundary")
)

// Block — IPv4-подсеть (адрес + длина префикса).
// Инвариант: младшие (Width - Bits) бит адреса равны нулю.
type Block struct {
	Addr uint32
	Bits int
}

// ParseBlock разбирает CIDR-нотацию вида "192.0.2.0/24".
// Невыровненный адрес сети считается ошибкой, а не молча маскируется.
func ParseBlock(s string) (Block, error) {
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return Block{}, fmt.Errorf("%w: %q", ErrInvalidCIDR, s)
	}
	if !p.Addr().Is4() {
		return Block{}, fmt.Errorf("%w: %q: only IPv4 networks are supported", ErrInvalidCIDR, s)
	}
	b := Block{Addr: addrToUint32(p.Addr()), Bits: p.Bits()}
	if b.Addr&^b.mask() != 0 {
		return Block{}, fmt.Errorf("%w: %s", ErrNotAligned, s)
	}
	return b, nil
}

// Size возвращает число адресов в блоке: 2^(Width-Bits).
func (b Block) Size() uint64 {
	return uint64(1) << (Width - b.Bits)
}

// Contains сообщает, лежит ли other целиком внутри b.
func (b Block) Contains(other Block) bool {
	return other.Bits >= b.Bits && other.Addr&b.mask() == b.Addr
}

// Overlaps сообщает, пересекаются ли блоки по адресам.
func (b Block) Overlaps(other Block) bool {
	return b.Contains(other) || other.Contains(b)
}

// Netmask возвращает маску подсети в точечной записи.
func (b Block) Netmask() string {
	return uint32ToAddr(b.mask()).String()
}

func (b Block) String() string {
	return fmt.Sprintf("%s/%d", uint32ToAddr(b.Addr), b.Bits)
}

func (b Block) mask() uint32 {
	return ^uint32(0) << (Width - b.Bits)
}

func addrToUint32(a netip.Addr) uint32 {
	v := a.As4()
	return uint32(v[0])<<24 | uint32(v[1])<<16 | uint32(v[2])<<8 | uint32(v[3])
}

func uint32ToAddr(v uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}
