package sitemap

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// RobotsPolicy names the crawlers explicitly allowed or blocked on top of
// the allow-all default.
type RobotsPolicy struct {
	Allow    []string `yaml:"allow" json:"allow"`
	Disallow []string `yaml:"disallow" json:"disallow"`
}

func DefaultRobotsPolicy() RobotsPolicy {
	return RobotsPolicy{
		Allow: []string{
			"Googlebot", "Googlebot-Image", "Googlebot-News", "Googlebot-Video", "Bingbot",
			"Yandex", "DuckDuckBot", "Baiduspider",
			"GPTBot", "Google-Extended", "PerplexityBot", "Claude-Web", "CCBot",
		},
		Disallow: []string{"AhrefsBot", "SemrushBot", "MJ12bot"},
	}
}

// WriteRobots writes a robots.txt that allows everything, lists the policy's
// crawlers and points at the sitemap.
func WriteRobots(w io.Writer, baseURL, brand string, date time.Time, policy RobotsPolicy) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Robots Configuration\n", brand)
	fmt.Fprintf(&b, "# Website: %s\n", baseURL)
	fmt.Fprintf(&b, "# Generated: %s\n\n", date.Format(dateLayout))

	b.WriteString("User-agent: *\nAllow: /\n\n")
	for _, agent := range policy.Allow {
		fmt.Fprintf(&b, "User-agent: %s\nAllow: /\n\n", agent)
	}
	for _, agent := range policy.Disallow {
		fmt.Fprintf(&b, "User-agent: %s\nDisallow: /\n\n", agent)
	}
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", baseURL)
	fmt.Fprintf(&b, "Host: %s\n", baseURL)

	_, err := io.WriteString(w, b.String())
	return err
}
