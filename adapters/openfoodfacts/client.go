package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ecoscan/domain/audit"
	"ecoscan/ports"
)

const (
	defaultBaseURL = "https://world.openfoodfacts.org"
	userAgent      = "EcoScan/1.0 (contact@example.com)"

	// maxAlternatives bounds both the search page size and the suggestions
	// returned; maxSummaryLen truncates the ingredient blurbs.
	maxAlternatives = 2
	maxSummaryLen   = 200
)

// Config holds Open Food Facts connection settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implements ports.AlternativesFinder against the Open Food Facts API:
// one product lookup to learn the category, one search for the most-scanned
// products in that category.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(config Config) ports.AlternativesFinder {
	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) FindAlternatives(ctx context.Context, barcode string) ([]audit.Alternative, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return []audit.Alternative{}, nil
	}

	// Category lookup failure is tolerated: the search falls back to an
	// uncategorized popularity query.
	category, err := c.lookupCategory(ctx, barcode)
	if err != nil {
		category = ""
	}

	return c.searchAlternatives(ctx, category)
}

type productResponse struct {
	Product *struct {
		CategoriesTags []string `json:"categories_tags"`
		CategoryTag    string   `json:"category_tag"`
	} `json:"product"`
}

func (c *Client) lookupCategory(ctx context.Context, barcode string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(barcode))

	var decoded productResponse
	if err := c.getJSON(ctx, endpoint, &decoded); err != nil {
		return "", err
	}
	if decoded.Product == nil {
		return "", nil
	}

	if len(decoded.Product.CategoriesTags) > 0 {
		return strings.TrimPrefix(decoded.Product.CategoriesTags[0], "en:"), nil
	}
	return strings.TrimPrefix(decoded.Product.CategoryTag, "en:"), nil
}

type searchResponse struct {
	Products []struct {
		ProductName       string `json:"product_name"`
		Code              string `json:"code"`
		IngredientsText   string `json:"ingredients_text"`
		IngredientsTextEn string `json:"ingredients_text_en"`
	} `json:"products"`
}

func (c *Client) searchAlternatives(ctx context.Context, category string) ([]audit.Alternative, error) {
	params := url.Values{
		"search_simple": {"1"},
		"action":        {"process"},
		"json":          {"1"},
		"page_size":     {fmt.Sprintf("%d", maxAlternatives)},
		"sort_by":       {"unique_scans_n"},
	}
	if category != "" {
		params.Set("search_terms", category)
	}

	var decoded searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/cgi/search.pl?"+params.Encode(), &decoded); err != nil {
		return nil, err
	}

	alternatives := make([]audit.Alternative, 0, maxAlternatives)
	for _, product := range decoded.Products {
		if len(alternatives) == maxAlternatives {
			break
		}
		name := product.ProductName
		if name == "" {
			name = product.Code
		}
		if name == "" {
			name = "Unknown Product"
		}
		ingredients := product.IngredientsText
		if ingredients == "" {
			ingredients = product.IngredientsTextEn
		}
		alternatives = append(alternatives, audit.Alternative{
			Name:    name,
			Summary: "Alternative with ingredients: " + truncate(ingredients, maxSummaryLen) + "...",
		})
	}
	return alternatives, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("openfoodfacts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openfoodfacts http %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
