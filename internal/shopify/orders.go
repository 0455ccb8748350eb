package shopify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/thibautrey/PebbleShopApp/internal/domain/models"
)

const (
	// ordersPageSize keeps the per-page query cost low; the API allows up
	// to 250 but larger pages burn the cost budget faster.
	ordersPageSize = 100

	// maxOrderPages caps a single aggregation session. Stores with more
	// than maxOrderPages*ordersPageSize orders in the window get a
	// silently truncated total; an accepted approximation, not an error.
	maxOrderPages = 10
)

const ordersTotalQuery = `query OrdersTotal($first:Int!, $after:String, $query:String!) {
  orders(first: $first, after: $after, query: $query) {
    pageInfo { hasNextPage }
    edges {
      cursor
      node {
        totalPriceSet { shopMoney { amount currencyCode } }
      }
    }
  }
}`

// ordersPage mirrors the slice of the response document this client reads.
type ordersPage struct {
	Orders struct {
		PageInfo struct {
			HasNextPage bool `json:"hasNextPage"`
		} `json:"pageInfo"`
		Edges []struct {
			Cursor string `json:"cursor"`
			Node   struct {
				TotalPriceSet struct {
					ShopMoney struct {
						Amount       string `json:"amount"`
						CurrencyCode string `json:"currencyCode"`
					} `json:"shopMoney"`
				} `json:"totalPriceSet"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"orders"`
}

// SumOrderTotals walks the store's orders created inside the range via
// forward cursor pagination and accumulates each order's shop-money total.
//
// Stop conditions: the server reports no next page, a page comes back
// empty, or the page cap is reached. The returned decimal is the raw sum;
// callers apply the final fixed-point formatting.
func (c *Client) SumOrderTotals(ctx context.Context, domain, token string, rng models.DateRange) (decimal.Decimal, error) {
	total := decimal.Zero
	filter := fmt.Sprintf("created_at:>=%s created_at:<=%s status:any", rng.Start, rng.End)

	var after *string
	for page := 0; page < maxOrderPages; page++ {
		vars := map[string]any{
			"first": ordersPageSize,
			"after": after,
			"query": filter,
		}
		data, err := c.Query(ctx, domain, token, ordersTotalQuery, vars)
		if err != nil {
			return decimal.Zero, err
		}

		var out ordersPage
		if err := json.Unmarshal(data, &out); err != nil {
			return decimal.Zero, &NetworkError{Err: err}
		}

		edges := out.Orders.Edges
		for _, e := range edges {
			amt := e.Node.TotalPriceSet.ShopMoney.Amount
			if amt == "" {
				continue
			}
			d, err := decimal.NewFromString(amt)
			if err != nil {
				return decimal.Zero, fmt.Errorf("parse order amount %q: %w", amt, err)
			}
			total = total.Add(d)
		}

		if !out.Orders.PageInfo.HasNextPage || len(edges) == 0 {
			break
		}
		cursor := edges[len(edges)-1].Cursor
		after = &cursor
	}

	return total, nil
}
