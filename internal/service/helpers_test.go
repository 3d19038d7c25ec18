package service_test

import (
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/vkr/wallet-service/internal/credentials"
	"github.com/vbncursed/vkr/wallet-service/internal/crypto"
	"github.com/vbncursed/vkr/wallet-service/internal/models"
	"github.com/vbncursed/vkr/wallet-service/internal/service"
)

const testIssuer = "3388000000022248227"

func testCredential(t *testing.T) credentials.Credential {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return credentials.Credential{
		Identity:   "wallet@demo.iam.gserviceaccount.com",
		KeyID:      "kid-1",
		PrivateKey: key,
	}
}

func sampleTicket() models.Ticket {
	return models.Ticket{
		QRCode:          "QR-123",
		Title:           "Sport Lisboa e Benfica",
		Header:          "Benfica x Porto",
		Subheader:       "2026-10-18 20:30",
		BackgroundColor: "#c8102e",
		NameLabel:       "Nome",
		Name:            "Ana Silva",
		AssociatedLabel: "Sócio",
		Associated:      "12345",
		BenchLabel:      "Bancada",
		Bench:           "Norte",
		GateLabel:       "Porta",
		Gate:            "7",
		SectionLabel:    "Sector",
		Section:         "B",
		FloorLabel:      "Piso",
		Floor:           "1",
		RowLabel:        "Fila",
		Row:             "12",
		SeatLabel:       "Lugar",
		Seat:            "34",
	}
}

// decodeLink проверяет подпись ссылки и возвращает claims
func decodeLink(t *testing.T, link string, pub *rsa.PublicKey) jwt.MapClaims {
	t.Helper()
	require.True(t, strings.HasPrefix(link, service.SaveURLPrefix))
	claims := jwt.MapClaims{}
	require.NoError(t, crypto.VerifyRS256(strings.TrimPrefix(link, service.SaveURLPrefix), pub, claims))
	return claims
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
