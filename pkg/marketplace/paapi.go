package marketplace

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	awsv4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// paapiHost is the PA-API v5 endpoint for the US marketplace.
const paapiHost = "webservices.amazon.com"
const paapiTarget = "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.SearchItems"
const paapiRegion = "us-east-1"
const paapiService = "ProductAdvertisingAPI"

// PAAPIBackend queries Amazon's Product Advertising API v5 SearchItems
// operation, SigV4-signing each request with the configured credentials.
// The signer's own cryptography is an external collaborator (spec.md
// §1); this backend only shapes the request and parses the response.
type PAAPIBackend struct {
	accessKey      string
	secretKey      string
	partnerTag     string
	httpClient     *http.Client
	signer         *awsv4.Signer
	endpointScheme string
	endpointHost   string
}

// NewPAAPIBackend builds a PAAPIBackend. Credentials come from the
// caller (typically loaded via pkg/config); an empty accessKey/secretKey
// makes every Search call fail with a config-classified error.
func NewPAAPIBackend(accessKey, secretKey, partnerTag string) *PAAPIBackend {
	return &PAAPIBackend{
		accessKey:      accessKey,
		secretKey:      secretKey,
		partnerTag:     partnerTag,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		signer:         awsv4.NewSigner(),
		endpointScheme: "https",
		endpointHost:   paapiHost,
	}
}

type paapiRequest struct {
	Keywords     string   `json:"Keywords"`
	PartnerTag   string   `json:"PartnerTag"`
	PartnerType  string   `json:"PartnerType"`
	Marketplace  string   `json:"Marketplace"`
	Resources    []string `json:"Resources"`
	ItemCount    int      `json:"ItemCount"`
}

type paapiResponse struct {
	SearchResult struct {
		Items []struct {
			ASIN   string `json:"ASIN"`
			Images struct {
				Primary struct {
					Large struct {
						URL string `json:"URL"`
					} `json:"Large"`
				} `json:"Primary"`
			} `json:"Images"`
			ItemInfo struct {
				Title struct {
					DisplayValue string `json:"DisplayValue"`
				} `json:"Title"`
			} `json:"ItemInfo"`
			Offers struct {
				Listings []struct {
					Price struct {
						DisplayAmount string `json:"DisplayAmount"`
					} `json:"Price"`
				} `json:"Listings"`
			} `json:"Offers"`
			CustomerReviews struct {
				StarRating float64 `json:"StarRating"`
				Count      int     `json:"Count"`
			} `json:"CustomerReviews"`
		} `json:"Items"`
	} `json:"SearchResult"`
}

// Search issues a signed SearchItems call for query and returns the
// ordered result list.
func (b *PAAPIBackend) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if b.accessKey == "" || b.secretKey == "" {
		return nil, fmt.Errorf("missing configuration: PA-API credentials not configured")
	}

	payload := paapiRequest{
		Keywords:    query,
		PartnerTag:  b.partnerTag,
		PartnerType: "Associates",
		Marketplace: "www.amazon.com",
		Resources: []string{
			"Images.Primary.Large",
			"ItemInfo.Title",
			"Offers.Listings.Price",
			"CustomerReviews.StarRating",
			"CustomerReviews.Count",
		},
		ItemCount: 5,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode PA-API request: %w", err)
	}

	endpoint := fmt.Sprintf("%s://%s/paapi5/searchitems", b.endpointScheme, b.endpointHost)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build PA-API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("X-Amz-Target", paapiTarget)
	req.Header.Set("Content-Encoding", "amz-1.0")

	creds := credentials.NewStaticCredentialsProvider(b.accessKey, b.secretKey, "")
	awsCreds, err := creds.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve PA-API credentials: %w", err)
	}
	payloadHash := sha256Hex(body)
	if err := b.signer.SignHTTP(ctx, awsCreds, req, payloadHash, paapiService, paapiRegion, time.Now()); err != nil {
		return nil, fmt.Errorf("sign PA-API request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PA-API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("PA-API credentials rejected: HTTP %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("PA-API returned HTTP %d: %s", resp.StatusCode, string(data))
	}

	var parsed paapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode PA-API response: %w", err)
	}

	results := make([]SearchResult, 0, len(parsed.SearchResult.Items))
	for _, item := range parsed.SearchResult.Items {
		r := SearchResult{
			ASIN:     item.ASIN,
			Title:    item.ItemInfo.Title.DisplayValue,
			ImageURL: item.Images.Primary.Large.URL,
			Rating:   item.CustomerReviews.StarRating,
			ReviewsCount: item.CustomerReviews.Count,
		}
		if len(item.Offers.Listings) > 0 {
			r.Price = item.Offers.Listings[0].Price.DisplayAmount
		}
		results = append(results, r)
	}
	return results, nil
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
