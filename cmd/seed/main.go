package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"frontdesk/internal/config"
	"frontdesk/internal/database"
	"frontdesk/internal/domain"
	"frontdesk/internal/modules/billing"
	"frontdesk/internal/modules/rate"
	"frontdesk/internal/pkg/logger"
	"frontdesk/internal/repository"
)

type roomSeed struct {
	number, name, roomType string
	kind                   domain.RoomKind
	in                     rate.RateInput
}

type bookingSeed struct {
	room       string
	guest      string
	phone      string
	email      string
	inOffset   int
	nights     int
	status     domain.BookingStatus
	advancePct int64
	method     domain.PaymentMethod
}

func main() {
	reset := flag.Bool("reset", true, "delete existing rooms and bookings first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zl, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("db connection failed", zap.Error(err))
	}
	if err := repository.Migrate(db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	if *reset {
		zl.Info("cleaning old data")
		db.Exec("DELETE FROM bookings")
		db.Exec("DELETE FROM rooms")
	}

	ctx := context.Background()
	rooms := rate.NewService(repository.NewRoomRepository(db), zl)
	bookings := repository.NewBookingRepository(db)

	byNumber := map[string]domain.Room{}
	for _, s := range roomSeeds() {
		out, err := rooms.CreateRoom(ctx, rate.RoomRequest{
			Number:    s.number,
			Name:      s.name,
			Kind:      s.kind,
			RoomType:  s.roomType,
			RateInput: s.in,
		})
		if err != nil {
			zl.Fatal("create room", zap.String("number", s.number), zap.Error(err))
		}
		byNumber[s.number] = out.Room
	}

	today := domain.Today(time.Now(), cfg.HotelTimezone)
	for _, s := range bookingSeeds() {
		room := byNumber[s.room]
		in := today.AddDays(s.inOffset)
		out := in.AddDays(s.nights)
		amount := rate.StayAmount(room.FinalRate, room.Kind, in, out)

		b := domain.Booking{
			RoomID:       room.ID,
			GuestName:    s.guest,
			Phone:        s.phone,
			Email:        s.email,
			CheckInDate:  in,
			CheckOutDate: out,
			Status:       s.status,
			Amount:       amount,
			Advance:      decimal.Zero,
		}
		paid, err := billing.ApplyPayment(b, billing.PaymentUpdate{
			NewCumulativeAdvance: amount.Mul(decimal.NewFromInt(s.advancePct)).Div(decimal.NewFromInt(100)).Round(0),
			Method:               s.method,
		})
		if err != nil {
			zl.Fatal("seed payment", zap.String("guest", s.guest), zap.Error(err))
		}
		if err := bookings.Create(ctx, &paid); err != nil {
			zl.Fatal("create booking", zap.String("guest", s.guest), zap.Error(err))
		}
	}

	zl.Info("seed complete",
		zap.Int("rooms", len(byNumber)),
		zap.Int("bookings", len(bookingSeeds())),
		zap.String("today", today.String()),
	)
}

func roomSeeds() []roomSeed {
	return []roomSeed{
		{"101", "Standard Queen", "standard", domain.RoomKindRoom, rate.RateInput{BaseRate: "2500", TaxPercent: "12", ExtraChargesEnabled: true}},
		{"102", "Standard Twin", "standard", domain.RoomKindRoom, rate.RateInput{BaseRate: "2500", DiscountPercent: "5", TaxPercent: "12", ExtraChargesEnabled: true}},
		{"204", "Deluxe King", "deluxe", domain.RoomKindRoom, rate.RateInput{BaseRate: "4200", DiscountPercent: "10", AddOnCharge: "500", TaxPercent: "18", ExtraChargesEnabled: true}},
		{"301", "Garden Suite", "suite", domain.RoomKindRoom, rate.RateInput{BaseRate: "7800", TaxPercent: "18", ExtraChargesEnabled: true}},
		{"305", "Family Room", "family", domain.RoomKindRoom, rate.RateInput{BaseRate: "5200"}},
		{"H-1", "Banquet Hall", "banquet", domain.RoomKindVenue, rate.RateInput{BaseRate: "65000", DiscountPercent: "8", AddOnCharge: "7500", TaxPercent: "18", ExtraChargesEnabled: true}},
		{"L-1", "Lawn", "outdoor", domain.RoomKindVenue, rate.RateInput{BaseRate: "40000", TaxPercent: "18", ExtraChargesEnabled: true}},
	}
}

func bookingSeeds() []bookingSeed {
	return []bookingSeed{
		{"101", "Priya Sharma", "+91 98450 12345", "priya@example.com", 0, 2, domain.BookingConfirmed, 50, domain.PaymentUPI},
		{"102", "Tom Becker", "+49 151 2345678", "tom@example.org", 0, 1, domain.BookingPending, 0, ""},
		{"204", "Aiko Tanaka", "+81 90 1234 5678", "aiko@example.jp", -2, 2, domain.BookingCheckedIn, 100, domain.PaymentCard},
		{"301", "Rahul Verma", "+91 99000 11223", "rahul@example.com", -1, 4, domain.BookingCheckedIn, 30, domain.PaymentCash},
		{"305", "Maria Lopez", "+34 612 345 678", "maria@example.es", 3, 3, domain.BookingConfirmed, 20, domain.PaymentBankTransfer},
		{"101", "Chen Wei", "+86 138 0013 8000", "chen@example.cn", -5, 2, domain.BookingCheckedOut, 100, domain.PaymentOnline},
		{"H-1", "Kapoor Wedding", "+91 98111 22334", "events@kapoor.in", 10, 1, domain.BookingConfirmed, 25, domain.PaymentBankTransfer},
		{"L-1", "Startup Offsite", "+91 80000 55555", "ops@startup.io", 1, 1, domain.BookingCancelled, 0, ""},
	}
}
