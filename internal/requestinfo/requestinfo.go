// internal/requestinfo/requestinfo.go
//
// Per-request metadata: user-agent fingerprint, client IP, and best-effort
// geolocation.  The structs are inert—no database handles, no large
// buffers—so they are safe to log or JSON-encode.
//
// Dependencies
// • github.com/avct/uasurfer          (UA parsing)
// • github.com/oschwald/geoip2-golang (MaxMind lookup)
package requestinfo

import (
	"context"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avct/uasurfer"
	"github.com/oschwald/geoip2-golang"
)

// UA holds the parsed user-agent properties we log with page requests.
type UA struct {
	Raw     string // entire User-Agent header
	Browser string // "Chrome", "Firefox", "Safari", ...
	Version string // "124.0.6367"
	OS      string // "macOS", "Windows", "Android", ...
	Device  string // "Desktop", "Phone", "Tablet", ...
	IsBot   bool
}

// Geo holds IP-based geolocation hints.  Best-effort; may be empty when
// the DB has no match or no DB is configured.
type Geo struct {
	IP         net.IP
	CountryISO string // "US", "CA", "FR", ...
	City       string
}

// Info is attached to the request context by Enrich.
type Info struct {
	UA        UA
	Geo       Geo
	URL       *url.URL // pointer copy, safe to dereference read-only
	Timestamp time.Time
}

// geoReader is a read-only MaxMind handle shared by all requests.  Nil
// disables lookups.
var geoReader *geoip2.Reader

// InitGeo opens the GeoLite2 database at startup.  Call once from main();
// an empty path leaves lookups disabled.
func InitGeo(dbPath string) error {
	if dbPath == "" {
		return nil
	}
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoReader = r
	return nil
}

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich, or nil when
// the middleware has not run.
func FromContext(ctx context.Context) *Info {
	v, _ := ctx.Value(ctxKey{}).(*Info)
	return v
}

//
// Internal helpers
//

// parseUA converts a raw header into our UA struct using uasurfer.
func parseUA(header string) UA {
	u := uasurfer.Parse(header)

	browser := strings.TrimPrefix(u.Browser.Name.String(), "Browser")

	osName := strings.TrimPrefix(u.OS.Name.String(), "OS")
	if osName == "MacOSX" {
		osName = "macOS"
	}

	return UA{
		Raw:     header,
		Browser: browser,
		Version: formatVersion(u.Browser.Version),
		OS:      osName,
		Device:  deviceString(u.DeviceType),
		IsBot:   u.IsBot(),
	}
}

// formatVersion builds "major.minor.patch" and trims trailing ".0" pairs.
func formatVersion(v uasurfer.Version) string {
	out := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	out = strings.TrimSuffix(strings.TrimSuffix(out, ".0"), ".0")
	if out == "" {
		return "0"
	}
	return out
}

func deviceString(dt uasurfer.DeviceType) string {
	switch dt {
	case uasurfer.DeviceComputer:
		return "Desktop"
	case uasurfer.DevicePhone:
		return "Phone"
	case uasurfer.DeviceTablet:
		return "Tablet"
	case uasurfer.DeviceConsole:
		return "Console"
	case uasurfer.DeviceWearable:
		return "Wearable"
	case uasurfer.DeviceTV:
		return "TV"
	default:
		return "Unknown"
	}
}

// lookupGeo returns best-effort Geo data using the shared reader.
func lookupGeo(ip net.IP) Geo {
	if geoReader == nil || ip == nil {
		return Geo{IP: ip}
	}
	rec, err := geoReader.City(ip)
	if err != nil {
		return Geo{IP: ip}
	}
	return Geo{
		IP:         ip,
		CountryISO: rec.Country.IsoCode,
		City:       rec.City.Names["en"],
	}
}
