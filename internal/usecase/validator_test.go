package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"receipt-processor/internal/domain"
	"receipt-processor/internal/usecase"
)

func TestParseReceipt(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     domain.Receipt
		wantErr  bool
	}{
		{
			name: "valid receipt",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"items": [
					{"shortDescription": "Mountain Dew 12PK", "price": "6.49"}
				],
				"total": "6.49"
			}`,
			want: domain.Receipt{
				Retailer:     "Target",
				PurchaseDate: "2022-01-01",
				PurchaseTime: "13:01",
				Items: []domain.Item{
					{ShortDescription: "Mountain Dew 12PK", Price: "6.49"},
				},
				Total: "6.49",
			},
		},
		{
			name: "extra fields are tolerated",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}],
				"total": "1.25",
				"cashier": "no. 4"
			}`,
			want: domain.Receipt{
				Retailer:     "Target",
				PurchaseDate: "2022-01-01",
				PurchaseTime: "13:01",
				Items:        []domain.Item{{ShortDescription: "Pepsi", Price: "1.25"}},
				Total:        "1.25",
			},
		},
		{
			name: "missing total",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}]
			}`,
			wantErr: true,
		},
		{
			name: "missing items",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"total": "1.25"
			}`,
			wantErr: true,
		},
		{
			name: "empty items array",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"items": [],
				"total": "1.25"
			}`,
			wantErr: true,
		},
		{
			name: "non-string retailer",
			document: `{
				"retailer": 42,
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}],
				"total": "1.25"
			}`,
			wantErr: true,
		},
		{
			name: "hour out of range",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "25:00",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}],
				"total": "1.25"
			}`,
			wantErr: true,
		},
		{
			name: "24:10 is not a clock time",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "24:10",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}],
				"total": "1.25"
			}`,
			wantErr: true,
		},
		{
			name: "single-digit hour",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "9:30",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}],
				"total": "1.25"
			}`,
			wantErr: true,
		},
		{
			name: "date with wrong shape",
			document: `{
				"retailer": "Target",
				"purchaseDate": "01/01/2022",
				"purchaseTime": "13:01",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}],
				"total": "1.25"
			}`,
			wantErr: true,
		},
		{
			name: "date that is not a calendar date",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-13-45",
				"purchaseTime": "13:01",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}],
				"total": "1.25"
			}`,
			wantErr: true,
		},
		{
			name: "total with one fraction digit",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}],
				"total": "35.3"
			}`,
			wantErr: true,
		},
		{
			name: "total without integer part",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}],
				"total": ".35"
			}`,
			wantErr: true,
		},
		{
			name: "negative total",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"items": [{"shortDescription": "Pepsi", "price": "1.25"}],
				"total": "-1.00"
			}`,
			wantErr: true,
		},
		{
			name: "item price malformed",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"items": [{"shortDescription": "Pepsi", "price": "1,25"}],
				"total": "1.25"
			}`,
			wantErr: true,
		},
		{
			name: "item description empty",
			document: `{
				"retailer": "Target",
				"purchaseDate": "2022-01-01",
				"purchaseTime": "13:01",
				"items": [{"shortDescription": "", "price": "1.25"}],
				"total": "1.25"
			}`,
			wantErr: true,
		},
		{
			name:     "not a JSON document",
			document: `{`,
			wantErr:  true,
		},
		{
			name:     "top-level array",
			document: `[{"retailer": "Target"}]`,
			wantErr:  true,
		},
		{
			name:     "null document",
			document: `null`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.ParseReceipt([]byte(tt.document))

			if tt.wantErr {
				assert.Error(t, err)
				var vErr *domain.ValidationError
				assert.ErrorAs(t, err, &vErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
