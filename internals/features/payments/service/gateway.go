package service

import (
	"errors"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Payment gateway client
========================================================= */

var SnapClient snap.Client

// InitGateway must be called at bootstrap. useProduction selects the
// production gateway environment over the sandbox.
func InitGateway(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// CreateOrder registers the order with the gateway and returns the snap
// token + redirect URL the frontend uses to collect payment.
func CreateOrder(orderID string, amount int64, itemName string, cust CustomerInput) (string, string, error) {
	if amount <= 0 {
		return "", "", errors.New("invalid order amount")
	}
	if orderID == "" {
		return "", "", errors.New("order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderID,
				Price: amount,
				Qty:   1,
				Name:  truncate(itemName, 50),
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", fmt.Errorf("gateway order failed: %w", err)
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
