package util

import (
	"net"
	"strings"
	"time"

	"github.com/oschwald/geoip2-golang"
	cache "github.com/patrickmn/go-cache"
)

var (
	geoipDB    *geoip2.Reader
	geoipCache *cache.Cache
)

// InitGeoIP opens a local GeoIP2/GeoLite2 .mmdb file for IP location
// enrichment of security log lines. An empty path is a no-op: lookups then
// return empty strings and the logger simply omits the location.
func InitGeoIP(dbPath string) error {
	if dbPath == "" {
		return nil
	}
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoipDB = r
	// Cache entries for 24h, purge every hour
	geoipCache = cache.New(24*time.Hour, 1*time.Hour)
	return nil
}

// CloseGeoIP closes the GeoIP DB if opened.
func CloseGeoIP() {
	if geoipDB != nil {
		_ = geoipDB.Close()
		geoipDB = nil
	}
}

func isPrivateOrLocal(ip string) bool {
	return ip == "127.0.0.1" || ip == "::1" ||
		strings.HasPrefix(ip, "10.") ||
		strings.HasPrefix(ip, "192.168.") ||
		strings.HasPrefix(ip, "::")
}

// GetIPLocation returns city and country for the provided IP using the local
// GeoIP database with an in-memory cache. Returns empty strings when a
// lookup is not available.
func GetIPLocation(ip string) (string, string) {
	if ip == "" || isPrivateOrLocal(ip) {
		return "", ""
	}

	if geoipCache != nil {
		if v, ok := geoipCache.Get(ip); ok {
			if arr, ok := v.([]string); ok && len(arr) == 2 {
				return arr[0], arr[1]
			}
		}
	}

	if geoipDB == nil {
		return "", ""
	}
	netip := net.ParseIP(ip)
	if netip == nil {
		return "", ""
	}
	rec, err := geoipDB.City(netip)
	if err != nil {
		return "", ""
	}

	city := rec.City.Names["en"]
	country := rec.Country.Names["en"]
	if country == "" {
		country = rec.Country.IsoCode
	}

	if geoipCache != nil {
		geoipCache.Set(ip, []string{city, country}, cache.DefaultExpiration)
	}
	return city, country
}
