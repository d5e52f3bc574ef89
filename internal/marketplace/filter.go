// Package marketplace filters search candidates down to trusted regional
// marketplaces. Upstream search results are an open web index; only items
// sold on an allow-listed Indian marketplace reach the response.
//
// Two checks exist because the two upstream response shapes differ: visual
// matches carry a product link, shopping results carry a merchant name.
package marketplace

import (
	"net/url"
	"strings"
)

// defaultDomains is the allow-list for link-based candidates.
var defaultDomains = []string{
	"amazon.in",
	"flipkart.com",
	"myntra.com",
	"ajio.com",
	"nykaa.com",
	"nykaafashion.com",
	"meesho.com",
	"tatacliq.com",
	"snapdeal.com",
	"limeroad.com",
	"bewakoof.com",
}

// defaultMerchants is the allow-list for merchant-name candidates.
var defaultMerchants = []string{
	"amazon",
	"flipkart",
	"myntra",
	"ajio",
	"nykaa",
	"meesho",
	"tata cliq",
	"tatacliq",
	"snapdeal",
	"limeroad",
	"bewakoof",
}

// Filter accepts or rejects candidates against a fixed allow-list.
type Filter struct {
	domains   []string
	merchants []string
}

// NewFilter returns a Filter with the default Indian marketplace allow-list.
func NewFilter() *Filter {
	return &Filter{
		domains:   defaultDomains,
		merchants: defaultMerchants,
	}
}

// NewFilterWith returns a Filter with explicit allow-lists. Used by tests
// and deployments targeting a different market.
func NewFilterWith(domains, merchants []string) *Filter {
	return &Filter{domains: domains, merchants: merchants}
}

// AllowedLink reports whether the link's host is an allow-listed domain or a
// subdomain of one.
func (f *Filter) AllowedLink(link string) bool {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range f.domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// AllowedMerchant reports whether the merchant name contains an allow-listed
// marketplace name. Merchant names from the search provider are free-form
// ("Myntra", "AJIO.com", "amazon.in - Seller X"), so this is a substring
// match, not an exact one.
func (f *Filter) AllowedMerchant(name string) bool {
	lower := strings.ToLower(name)
	if lower == "" {
		return false
	}
	for _, m := range f.merchants {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
