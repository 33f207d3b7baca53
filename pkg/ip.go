package pkg

import (
	"fmt"
	"net"
	"regexp"
	"strings"

	"net/http"
)

var (
	localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1:\d{1,5}`)
)

func IPIsLocal(ipAddr string) bool {
	// used in local development ?
	if strings.HasPrefix(ipAddr, "127.0.0.1:") {
		return true
	}

	// user within docker container ?
	return localDockerIpRegex.MatchString(ipAddr)
}

func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		ipAddr = r.Header.Get("X-Forwarded-For")
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	// used in development
	if IPIsLocal(ipAddr) {
		return "localhost", nil
	}

	ip, _, err := net.SplitHostPort(ipAddr)
	if err != nil {
		// no port present, take the address as is
		if parsed := net.ParseIP(ipAddr); parsed != nil {
			return ipAddr, nil
		}
		return "", fmt.Errorf("invalid remote address: %s", ipAddr)
	}

	return ip, nil
}
