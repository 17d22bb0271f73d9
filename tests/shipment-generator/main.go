package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Address struct {
	Postcode    string `json:"postcode"`
	CountryCode string `json:"country_code"`
}

type Weight struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

type Item struct {
	Title      string     `json:"title"`
	Quantity   int        `json:"quantity"`
	Weight     Weight     `json:"weight"`
	Dimensions Dimensions `json:"dimensions"`
	UnitValue  string     `json:"unit_value"`
}

type Shipment struct {
	OrderID    string  `json:"order_id"`
	OrderTotal string  `json:"order_total"`
	Recipient  Address `json:"recipient"`
	Items      []Item  `json:"items"`
}

var postcodes = []string{"2000", "3000", "4000", "5000", "6000", "7000"}

var products = []struct {
	title  string
	kg     float64
	dims   [3]float64
	dollar int
}{
	{"coffee mug", 0.4, [3]float64{10, 8, 8}, 25},
	{"hardcover book", 0.8, [3]float64{24, 16, 4}, 45},
	{"sneakers", 1.1, [3]float64{33, 22, 12}, 160},
	{"board game", 2.3, [3]float64{40, 27, 7}, 89},
	{"kettlebell", 8, [3]float64{22, 18, 25}, 70},
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomShipment() Shipment {
	total := 0
	count := rand.Intn(3) + 1
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		p := products[rand.Intn(len(products))]
		qty := rand.Intn(2) + 1
		total += p.dollar * qty
		items = append(items, Item{
			Title:    p.title,
			Quantity: qty,
			Weight:   Weight{Value: p.kg, Unit: "kg"},
			Dimensions: Dimensions{
				Length: p.dims[0],
				Width:  p.dims[1],
				Height: p.dims[2],
				Unit:   "cm",
			},
			UnitValue: fmt.Sprintf("%d.00", p.dollar),
		})
	}

	recipient := Address{
		Postcode:    postcodes[rand.Intn(len(postcodes))],
		CountryCode: "AU",
	}
	if rand.Intn(5) == 0 {
		recipient = Address{CountryCode: "NZ"}
	}

	return Shipment{
		OrderID:    "order-" + randomString(12),
		OrderTotal: fmt.Sprintf("%d.00", total),
		Recipient:  recipient,
		Items:      items,
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "shipments",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			shipment := generateRandomShipment()
			data, _ := json.Marshal(shipment)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("shipment generated", shipment.OrderID)
		case <-ctx.Done():
			return
		}
	}
}
