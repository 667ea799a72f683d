package netutil

import (
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoosePrimaryPrefersIPv4(t *testing.T) {
	t.Parallel()

	addrs := []netip.Addr{
		netip.MustParseAddr("127.0.0.1"),
		netip.MustParseAddr("fe80::1"),
		netip.MustParseAddr("2001:db8::10"),
		netip.MustParseAddr("192.168.4.17"),
	}

	assert.Equal(t, "192.168.4.17", choosePrimary(addrs))
}

func TestChoosePrimaryFallsBackToIPv6(t *testing.T) {
	t.Parallel()

	addrs := []netip.Addr{
		netip.MustParseAddr("127.0.0.1"),
		netip.MustParseAddr("2001:db8::10"),
	}

	assert.Equal(t, "2001:db8::10", choosePrimary(addrs))
}

func TestChoosePrimaryLoopbackOnly(t *testing.T) {
	t.Parallel()

	addrs := []netip.Addr{
		netip.MustParseAddr("127.0.0.1"),
		netip.MustParseAddr("::1"),
		netip.MustParseAddr("fe80::a"),
	}

	assert.Equal(t, Fallback, choosePrimary(addrs))
}

func TestChoosePrimaryEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Fallback, choosePrimary(nil))
}

func TestAddrFromInterfaceAddr(t *testing.T) {
	t.Parallel()

	addr, ok := addrFromInterfaceAddr(&net.IPNet{IP: net.ParseIP("10.0.0.5"), Mask: net.CIDRMask(24, 32)})
	require.True(t, ok)
	assert.Equal(t, "10.0.0.5", addr.String())

	addr, ok = addrFromInterfaceAddr(&net.IPAddr{IP: net.ParseIP("fe80::a")})
	require.True(t, ok)
	assert.Equal(t, "fe80::a", addr.String())

	_, ok = addrFromInterfaceAddr(&net.TCPAddr{IP: net.ParseIP("10.0.0.5")})
	assert.False(t, ok)
}

func TestPrimaryAddrNeverEmpty(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, PrimaryAddr())
}
