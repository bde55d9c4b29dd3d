// Package eticket renders order line items as encrypted QR codes that venue
// staff can scan at the door.
package eticket

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/skip2/go-qrcode"

	"ms-concerts/internal/models"
)

// Generator produces AES-encrypted QR PNGs. The secret is hashed to a fixed
// 32-byte key so any passphrase works.
type Generator struct {
	secret []byte
}

func NewGenerator(secret string) *Generator {
	hashed := sha256.Sum256([]byte(secret))
	return &Generator{secret: hashed[:]}
}

// ticketPayload is what the scanner decrypts: enough to match the line item
// against the order without a network round trip.
type ticketPayload struct {
	OrderID      int64   `json:"orderId"`
	OrderItemID  int64   `json:"orderItemId"`
	TicketTypeID int64   `json:"ticketTypeId"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	UserID       int64   `json:"userId"`
}

// GenerateItemQR returns a 256x256 PNG QR code for one order line item.
func (g *Generator) GenerateItemQR(o models.Order, item models.OrderItem) ([]byte, error) {
	data, err := json.Marshal(ticketPayload{
		OrderID:      o.ID,
		OrderItemID:  item.ID,
		TicketTypeID: item.TicketTypeID,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		UserID:       o.UserID,
	})
	if err != nil {
		return nil, err
	}
	encrypted, err := encryptAES(data, g.secret)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(encrypted, qrcode.Medium, 256)
}

func encryptAES(data, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	ciphertext := make([]byte, aes.BlockSize+len(data))
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}
	stream := cipher.NewCFBEncrypter(block, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], data)
	return base64.URLEncoding.EncodeToString(ciphertext), nil
}
