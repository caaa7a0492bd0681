// Command demo walks the full ordering flow in the terminal: browse the
// demo catalog, fill a cart, check out, then watch the order progress to
// delivery. It is the stand-in for the app screens.
package main

import (
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/jot2003/bktable4u/internal/cart"
	"github.com/jot2003/bktable4u/internal/catalog"
	"github.com/jot2003/bktable4u/internal/checkout"
	"github.com/jot2003/bktable4u/internal/config"
	"github.com/jot2003/bktable4u/internal/order"
	"github.com/jot2003/bktable4u/internal/payment"
	"github.com/jot2003/bktable4u/internal/vnd"
)

func main() {
	cfg := config.Load()

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// Discovery screen
	repo := catalog.NewDemoRepository()
	fmt.Println("Nhà hàng gần bạn:")
	for _, r := range repo.ListRestaurants() {
		busy := ""
		if r.IsBusy {
			busy = " (đông khách)"
		}
		fmt.Printf("  %s  ★%.1f  %s  %s%s\n", r.Name, r.Rating, r.DistanceKm+" km", r.PriceRange, busy)
	}

	restaurant, err := repo.GetRestaurant("1")
	if err != nil {
		log.Fatalf("restaurant: %v", err)
	}
	dishes, err := repo.ListDishes(restaurant.ID)
	if err != nil {
		log.Fatalf("menu: %v", err)
	}

	fmt.Printf("\nThực đơn %s:\n", restaurant.Name)
	for _, d := range dishes {
		fmt.Printf("  %s — %s\n", d.Name, vnd.Format(d.Price))
	}

	// Cart screen
	c := cart.New(cfg.DeliveryFee)
	c.AddOrIncrement(cart.Line{ID: dishes[0].ID, Name: dishes[0].Name, UnitPrice: dishes[0].Price, Quantity: 1, Options: []string{"Không hành"}})
	c.AddOrIncrement(cart.Line{ID: dishes[1].ID, Name: dishes[1].Name, UnitPrice: dishes[1].Price, Quantity: 2, Options: []string{"Thêm rau"}})

	totals := c.Totals()
	fmt.Println("\nGiỏ hàng:")
	for _, line := range c.Lines() {
		fmt.Printf("  %dx %s — %s\n", line.Quantity, line.Name, vnd.Format(line.UnitPrice*int64(line.Quantity)))
	}
	fmt.Printf("  Tạm tính: %s  Phí giao: %s  Tổng: %s\n",
		vnd.Format(totals.Subtotal), vnd.Format(totals.DeliveryFee), vnd.Format(totals.Total))

	// Checkout flow
	orders := order.NewMemoryStore(order.WithLogger(logger))
	session := checkout.NewSession(checkout.Params{
		Cart:            c,
		RestaurantID:    restaurant.ID,
		RestaurantName:  restaurant.Name,
		RestaurantImage: restaurant.ImageURL,
		Processor:       payment.NewSimulatedProcessor(cfg.SettlementDelay),
		Orders:          orders,
		Logger:          logger,
	})

	if err := session.SelectAddress(checkout.DefaultAddress().ID); err != nil {
		log.Fatalf("select address: %v", err)
	}
	if err := session.SetNote("Gọi trước khi đến"); err != nil {
		log.Fatalf("set note: %v", err)
	}
	if err := session.ConfirmStep(); err != nil {
		log.Fatalf("confirm address: %v", err)
	}
	if err := session.SelectPayment("cash"); err != nil {
		log.Fatalf("select payment: %v", err)
	}
	if err := session.ConfirmStep(); err != nil {
		log.Fatalf("confirm payment: %v", err)
	}

	fmt.Println("\nĐang xử lý thanh toán...")
	for session.IsProcessing() {
		time.Sleep(100 * time.Millisecond)
	}
	if err := session.LastError(); err != nil {
		log.Fatalf("settlement: %v", err)
	}

	placed, err := orders.Get(session.OrderID())
	if err != nil {
		log.Fatalf("order: %v", err)
	}
	fmt.Printf("Đặt hàng thành công! Mã đơn: %s (%s)\n\n", placed.ID, vnd.Format(placed.TotalAmount))

	// Tracking screen
	tracker := order.NewTracker(orders, placed.ID, cfg.TrackInterval, logger)
	defer tracker.Close()

	last := placed.Status
	fmt.Printf("Trạng thái: %s\n", last)
	for !last.IsTerminal() {
		time.Sleep(cfg.TrackInterval / 4)
		current, err := orders.Get(placed.ID)
		if err != nil {
			log.Fatalf("track: %v", err)
		}
		if current.Status != last {
			last = current.Status
			fmt.Printf("Trạng thái: %s\n", last)
			if current.Rider != nil && last == order.StatusOnTheWay {
				fmt.Printf("  Tài xế: %s (%s)\n", current.Rider.Name, current.Rider.Phone)
			}
		}
	}
	fmt.Println("Giao hàng hoàn tất, chúc ngon miệng!")
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
