package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

const rateURL = "http://localhost:8080/rates"

var postcodes = []string{"2000", "3000", "4000", "5000"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomBody() string {
	postcode := postcodes[rand.Intn(len(postcodes))]
	qty := rand.Intn(3) + 1
	return fmt.Sprintf(`{
		"order_id": "load-%d",
		"order_total": "%d.00",
		"recipient": {"postcode": %q, "country_code": "AU"},
		"items": [{
			"title": "coffee mug",
			"quantity": %d,
			"weight": {"value": 0.4, "unit": "kg"},
			"dimensions": {"length": 10, "width": 8, "height": 8, "unit": "cm"},
			"unit_value": "25.00"
		}]
	}`, rand.Intn(100000), qty*25, postcode, qty)
}

func doRequest() {
	resp, err := http.Post(rateURL, "application/json", strings.NewReader(randomBody()))
	if err != nil {
		fmt.Println("request failed:", err)
	} else {
		fmt.Println("POST", rateURL, "->", resp.Status)
		resp.Body.Close()
	}
}
