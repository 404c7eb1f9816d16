package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/domain"
)

// statusColors drive the badge color in order emails.
var statusColors = map[domain.OrderStatus]string{
	domain.StatusPending:   "#ffc107",
	domain.StatusShipped:   "#17a2b8",
	domain.StatusDelivered: "#28a745",
	domain.StatusCancelled: "#dc3545",
}

// welcomeEmail renders the account-creation notification body.
func welcomeEmail(username string) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 30px; text-align: center; border-radius: 10px;">
    <h1 style="color: white; margin: 0;">Welcome to Our Grocery Store!</h1>
  </div>
  <div style="padding: 30px; background-color: #f8f9fa; border-radius: 10px; margin-top: 20px;">
    <h2 style="color: #333;">Hello %s!</h2>
    <p style="color: #666; font-size: 16px; line-height: 1.6;">
      Your account has been successfully created. You can now browse our products,
      add items to your cart, and place orders with ease.
    </p>
    <p style="color: #999; font-size: 14px; text-align: center; margin-top: 30px;">
      Thank you for choosing our grocery store!
    </p>
  </div>
</body>
</html>`, username)
}

// orderEmail renders the order confirmation / status update body.
func orderEmail(username, orderID string, total decimal.Decimal, status domain.OrderStatus) string {
	color, ok := statusColors[status]
	if !ok {
		color = "#666"
	}
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #28a745 0%%, #20c997 100%%); padding: 30px; text-align: center; border-radius: 10px;">
    <h1 style="color: white; margin: 0;">Order Update</h1>
  </div>
  <div style="padding: 30px; background-color: #f8f9fa; border-radius: 10px; margin-top: 20px;">
    <h2 style="color: #333;">Hello %s!</h2>
    <div style="background-color: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #333; margin-top: 0;">Order Details:</h3>
      <p><strong>Order ID:</strong> %s</p>
      <p><strong>Total Amount:</strong> Rs %s</p>
      <p><strong>Date:</strong> %s</p>
    </div>
    <div style="background-color: %s; color: white; padding: 15px; border-radius: 8px; text-align: center;">
      <h3 style="margin: 0;">Your order status: %s</h3>
    </div>
    <p style="color: #666; font-size: 16px; margin-top: 20px;">
      Thank you for shopping with us! We'll keep you updated on your order progress.
    </p>
  </div>
</body>
</html>`,
		username,
		orderID,
		total.StringFixed(2),
		time.Now().UTC().Format("2006-01-02 15:04:05"),
		color,
		strings.ToUpper(string(status)),
	)
}
