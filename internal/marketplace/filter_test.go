package marketplace

import "testing"

func TestAllowedLink(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"https://www.myntra.com/kurtis/123", true},
		{"https://amazon.in/dp/B0XYZ", true},
		{"https://m.flipkart.com/p/abc", true},
		{"https://www.ajio.com/s/tops", true},
		{"https://aliexpress.com/item/1", false},
		{"https://notmyntra.com/item", false},
		{"https://myntra.com.evil.example/phish", false},
		{"not a url", false},
		{"", false},
	}
	f := NewFilter()
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			if got := f.AllowedLink(tt.link); got != tt.want {
				t.Errorf("AllowedLink(%q) = %v, want %v", tt.link, got, tt.want)
			}
		})
	}
}

func TestAllowedMerchant(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Myntra", true},
		{"AJIO.com", true},
		{"amazon.in - RetailNet", true},
		{"Tata CLiQ", true},
		{"Nykaa Fashion", true},
		{"Shein", false},
		{"eBay", false},
		{"", false},
	}
	f := NewFilter()
	for _, tt := range tests {
		if got := f.AllowedMerchant(tt.name); got != tt.want {
			t.Errorf("AllowedMerchant(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCustomAllowLists(t *testing.T) {
	f := NewFilterWith([]string{"shop.example"}, []string{"example shop"})
	if !f.AllowedLink("https://www.shop.example/p/1") {
		t.Error("AllowedLink should accept custom domain")
	}
	if f.AllowedLink("https://www.myntra.com/p/1") {
		t.Error("AllowedLink should reject domain outside the custom list")
	}
	if !f.AllowedMerchant("Example Shop Ltd") {
		t.Error("AllowedMerchant should accept custom merchant")
	}
}
