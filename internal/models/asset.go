package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// AssetType represents the type of portfolio asset.
type AssetType string

const (
	AssetTypeStock      AssetType = "stock"
	AssetTypeMutualFund AssetType = "mutual_fund"
	AssetTypeCrypto     AssetType = "crypto"
	AssetTypeBond       AssetType = "bond"
	AssetTypeCash       AssetType = "cash"
	AssetTypeOther      AssetType = "other"
)

// AssetDetails holds the fields that only make sense for one asset type.
// Each variant reports the type it belongs to.
type AssetDetails interface {
	AssetType() AssetType
}

// StockDetails are the stock-specific fields.
type StockDetails struct {
	Exchange string `json:"exchange,omitempty"`
}

// MutualFundDetails are the mutual-fund-specific fields.
type MutualFundDetails struct {
	SchemeCode   string  `json:"scheme_code,omitempty"`
	ExpenseRatio float64 `json:"expense_ratio,omitempty"`
}

// CryptoDetails are the crypto-specific fields.
type CryptoDetails struct {
	Network       string `json:"network,omitempty"`
	WalletAddress string `json:"wallet_address,omitempty"`
}

// BondDetails are the bond-specific fields.
type BondDetails struct {
	Issuer       string  `json:"issuer,omitempty"`
	CouponRate   float64 `json:"coupon_rate,omitempty"`
	MaturityDate *Date   `json:"maturity_date,omitempty"`
}

// CashDetails are the cash-specific fields.
type CashDetails struct {
	Currency     string  `json:"currency,omitempty"`
	InterestRate float64 `json:"interest_rate,omitempty"`
}

// OtherDetails carries nothing.
type OtherDetails struct{}

func (StockDetails) AssetType() AssetType      { return AssetTypeStock }
func (MutualFundDetails) AssetType() AssetType { return AssetTypeMutualFund }
func (CryptoDetails) AssetType() AssetType     { return AssetTypeCrypto }
func (BondDetails) AssetType() AssetType       { return AssetTypeBond }
func (CashDetails) AssetType() AssetType       { return AssetTypeCash }
func (OtherDetails) AssetType() AssetType      { return AssetTypeOther }

// Asset is a holding in a user's portfolio.
type Asset struct {
	ID           string       `json:"id"`
	Type         AssetType    `json:"type"`
	Symbol       string       `json:"symbol"`
	Name         string       `json:"name"`
	Units        float64      `json:"units"`
	BuyPrice     float64      `json:"buy_price"`
	CurrentPrice float64      `json:"current_price"`
	LastUpdated  time.Time    `json:"last_updated"`
	GoalID       string       `json:"goal_id,omitempty"`
	Details      AssetDetails `json:"details"`
}

// UnmarshalJSON decodes the details object according to the asset type.
func (a *Asset) UnmarshalJSON(b []byte) error {
	type alias Asset
	var raw struct {
		alias
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	details, err := DecodeAssetDetails(raw.Type, raw.Details)
	if err != nil {
		return err
	}
	*a = Asset(raw.alias)
	a.Details = details
	return nil
}

// DecodeAssetDetails decodes raw details for the given asset type. Missing
// details decode to the empty variant.
func DecodeAssetDetails(t AssetType, raw json.RawMessage) (AssetDetails, error) {
	switch t {
	case AssetTypeStock:
		return decodeDetails[StockDetails](raw)
	case AssetTypeMutualFund:
		return decodeDetails[MutualFundDetails](raw)
	case AssetTypeCrypto:
		return decodeDetails[CryptoDetails](raw)
	case AssetTypeBond:
		return decodeDetails[BondDetails](raw)
	case AssetTypeCash:
		return decodeDetails[CashDetails](raw)
	case AssetTypeOther:
		return OtherDetails{}, nil
	default:
		return nil, fmt.Errorf("unknown asset type %q", t)
	}
}

func decodeDetails[T AssetDetails](raw json.RawMessage) (AssetDetails, error) {
	var d T
	if len(raw) == 0 || string(raw) == "null" {
		return d, nil
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("invalid %s details: %w", d.AssetType(), err)
	}
	return d, nil
}

// Portfolio is the set of assets held by a user.
type Portfolio struct {
	UserID string  `json:"user_id"`
	Assets []Asset `json:"assets"`
}
