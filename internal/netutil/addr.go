// Package netutil resolves the host address reported to the operator
// once the provisioned service is reachable.
package netutil

import (
	"net"
	"net/netip"
)

// Fallback is reported when the host has no routable interface address.
const Fallback = "localhost"

// PrimaryAddr returns the interface address most likely reachable from
// other machines. Global unicast IPv4 addresses win over IPv6; hosts
// with only loopback or link-local addresses get Fallback.
func PrimaryAddr() string {
	ifaceAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return Fallback
	}
	addrs := make([]netip.Addr, 0, len(ifaceAddrs))
	for _, addr := range ifaceAddrs {
		ip, ok := addrFromInterfaceAddr(addr)
		if !ok {
			continue
		}
		addrs = append(addrs, ip)
	}
	return choosePrimary(addrs)
}

func choosePrimary(addrs []netip.Addr) string {
	var six netip.Addr
	for _, addr := range addrs {
		if !addr.IsValid() || !addr.IsGlobalUnicast() {
			continue
		}
		if addr.Is4() {
			return addr.String()
		}
		if !six.IsValid() {
			six = addr
		}
	}
	if six.IsValid() {
		return six.String()
	}
	return Fallback
}

func addrFromInterfaceAddr(addr net.Addr) (netip.Addr, bool) {
	var ip net.IP
	switch typed := addr.(type) {
	case *net.IPNet:
		ip = typed.IP
	case *net.IPAddr:
		ip = typed.IP
	default:
		return netip.Addr{}, false
	}
	parsed, ok := netip.AddrFromSlice(ip)
	if !ok {
		return netip.Addr{}, false
	}
	return parsed.Unmap(), true
}
