package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// Call once at bootstrap.
func InitMidtrans(serverKey string, useProd bool) {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken creates a gateway transaction and returns the Snap
// token plus the hosted payment page URL.
func GenerateSnapToken(orderID string, amount int, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
