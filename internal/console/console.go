// Package console renders the interactive text menus. It owns no state:
// every action calls straight into the hotel service and prints the result.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/BahriaResearchLab/hotelier/pkg/hotel"
)

// CredentialGate checks a candidate admin password.
type CredentialGate interface {
	Verify(candidate string) (bool, error)
}

// Console drives the menu loops over one input/output pair.
type Console struct {
	service *hotel.Service
	gate    CredentialGate
	scanner *bufio.Scanner
	out     io.Writer
}

// New wires a Console.
func New(service *hotel.Service, gate CredentialGate, input io.Reader, output io.Writer) *Console {
	return &Console{
		service: service,
		gate:    gate,
		scanner: bufio.NewScanner(input),
		out:     output,
	}
}

// Run shows the entry menu until the user exits or input ends.
func (console *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(console.out)
		fmt.Fprintln(console.out, "==== HOTEL MANAGEMENT SYSTEM ====")
		fmt.Fprintln(console.out, "1. Admin login")
		fmt.Fprintln(console.out, "2. Front desk")
		fmt.Fprintln(console.out, "3. Exit")
		choice, err := console.readInt("Enter choice: ")
		if err != nil {
			return exitOnEOF(err)
		}
		switch choice {
		case 1:
			if err := console.adminLogin(ctx); err != nil {
				return exitOnEOF(err)
			}
		case 2:
			if err := console.frontDesk(ctx); err != nil {
				return exitOnEOF(err)
			}
		case 3:
			fmt.Fprintln(console.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(console.out, "Invalid choice.")
		}
	}
}

func (console *Console) frontDesk(ctx context.Context) error {
	for {
		fmt.Fprintln(console.out)
		fmt.Fprintln(console.out, "---- FRONT DESK ----")
		fmt.Fprintln(console.out, " 1. Add room            8. Add service to room")
		fmt.Fprintln(console.out, " 2. View rooms          9. Generate invoice")
		fmt.Fprintln(console.out, " 3. Search room by type 10. Calculate stay bill")
		fmt.Fprintln(console.out, " 4. Filter by price     11. Submit feedback")
		fmt.Fprintln(console.out, " 5. Book room           12. View feedback")
		fmt.Fprintln(console.out, " 6. Cancel booking      13. Search guest by phone")
		fmt.Fprintln(console.out, " 7. View bookings       14. Booking history")
		fmt.Fprintln(console.out, "15. Search guest by name")
		fmt.Fprintln(console.out, " 0. Back")
		choice, err := console.readInt("Enter choice: ")
		if err != nil {
			return err
		}
		var actionErr error
		switch choice {
		case 0:
			return nil
		case 1:
			actionErr = console.addRoom(ctx)
		case 2:
			console.printRooms(console.service.Rooms())
		case 3:
			actionErr = console.searchRoomsByType()
		case 4:
			actionErr = console.filterRoomsByPrice()
		case 5:
			actionErr = console.bookRoom(ctx)
		case 6:
			actionErr = console.cancelBooking(ctx)
		case 7:
			console.printBookings(console.service.Bookings())
		case 8:
			actionErr = console.addService(ctx)
		case 9:
			actionErr = console.generateInvoice(ctx)
		case 10:
			actionErr = console.calculateStayBill()
		case 11:
			actionErr = console.submitFeedback(ctx)
		case 12:
			actionErr = console.viewFeedback(ctx)
		case 13:
			actionErr = console.searchGuestByPhone()
		case 14:
			console.printHistory(console.service.BookingHistory())
		case 15:
			actionErr = console.searchGuestByName()
		default:
			fmt.Fprintln(console.out, "Invalid choice.")
		}
		if actionErr != nil {
			if isInputEnd(actionErr) {
				return actionErr
			}
			fmt.Fprintf(console.out, "Error: %v\n", actionErr)
		}
	}
}

func (console *Console) addRoom(ctx context.Context) error {
	number, err := console.readRoomNumber()
	if err != nil {
		return err
	}
	typeToken, err := console.readLine("Room type: ")
	if err != nil {
		return err
	}
	roomType, err := hotel.NewRoomType(typeToken)
	if err != nil {
		return err
	}
	price, err := console.readPrice("Nightly price: ")
	if err != nil {
		return err
	}
	capacity, err := console.readInt("Capacity: ")
	if err != nil {
		return err
	}
	room, err := hotel.NewRoom(number, roomType, price, capacity)
	if err != nil {
		return err
	}
	if err := console.service.AddRoom(ctx, room); err != nil {
		return err
	}
	fmt.Fprintln(console.out, "Room added.")
	return nil
}

func (console *Console) searchRoomsByType() error {
	typeToken, err := console.readLine("Room type: ")
	if err != nil {
		return err
	}
	roomType, err := hotel.NewRoomType(typeToken)
	if err != nil {
		return err
	}
	matches := console.service.RoomsByType(roomType)
	if len(matches) == 0 {
		fmt.Fprintf(console.out, "No rooms of type %s.\n", roomType.String())
		return nil
	}
	console.printRooms(matches)
	return nil
}

func (console *Console) filterRoomsByPrice() error {
	min, err := console.readPrice("Min price: ")
	if err != nil {
		return err
	}
	max, err := console.readPrice("Max price: ")
	if err != nil {
		return err
	}
	console.printRooms(console.service.RoomsByPriceRange(min, max))
	return nil
}

func (console *Console) bookRoom(ctx context.Context) error {
	guest, err := console.readGuestName()
	if err != nil {
		return err
	}
	phone, err := console.readPhone()
	if err != nil {
		return err
	}
	number, err := console.readRoomNumber()
	if err != nil {
		return err
	}
	checkInToken, err := console.readLine("Check-in date: ")
	if err != nil {
		return err
	}
	checkIn, err := hotel.NewStayDate(checkInToken)
	if err != nil {
		return err
	}
	checkOutToken, err := console.readLine("Check-out date: ")
	if err != nil {
		return err
	}
	checkOut, err := hotel.NewStayDate(checkOutToken)
	if err != nil {
		return err
	}
	booking := hotel.NewBooking(guest, phone, number, checkIn, checkOut)
	if err := console.service.BookRoom(ctx, booking); err != nil {
		return err
	}
	fmt.Fprintln(console.out, "Room booked.")
	return nil
}

func (console *Console) cancelBooking(ctx context.Context) error {
	guest, err := console.readGuestName()
	if err != nil {
		return err
	}
	if err := console.service.CancelBooking(ctx, guest); err != nil {
		return err
	}
	fmt.Fprintln(console.out, "Booking cancelled.")
	return nil
}

func (console *Console) addService(ctx context.Context) error {
	number, err := console.readRoomNumber()
	if err != nil {
		return err
	}
	serviceName, err := console.readLine("Service name: ")
	if err != nil {
		return err
	}
	cost, err := console.readPrice("Cost: ")
	if err != nil {
		return err
	}
	if err := console.service.AddServiceToRoom(ctx, number, serviceName, cost); err != nil {
		return err
	}
	fmt.Fprintln(console.out, "Service added.")
	return nil
}

func (console *Console) generateInvoice(ctx context.Context) error {
	phone, err := console.readPhone()
	if err != nil {
		return err
	}
	charge, err := console.readPrice("Extra service charges: ")
	if err != nil {
		return err
	}
	invoice, err := console.service.GenerateInvoice(ctx, phone, charge)
	if err != nil {
		return err
	}
	fmt.Fprintf(console.out, "Room stay bill: %.2f\n", invoice.StayBill.Float64())
	fmt.Fprintf(console.out, "Service charge: %.2f\n", invoice.ServiceCharge.Float64())
	fmt.Fprintf(console.out, "Total bill: %.2f\n", invoice.Total.Float64())
	return nil
}

func (console *Console) calculateStayBill() error {
	phone, err := console.readPhone()
	if err != nil {
		return err
	}
	bill := console.service.StayBill(phone)
	fmt.Fprintf(console.out, "Total bill: %.2f\n", bill.Float64())
	return nil
}

func (console *Console) submitFeedback(ctx context.Context) error {
	stars, err := console.readInt("Rating (1-5 stars): ")
	if err != nil {
		return err
	}
	text, err := console.readLine("Feedback: ")
	if err != nil {
		return err
	}
	entry, err := hotel.NewFeedback(stars, text)
	if err != nil {
		return err
	}
	if err := console.service.SubmitFeedback(ctx, entry); err != nil {
		return err
	}
	fmt.Fprintln(console.out, "Thank you! Feedback submitted.")
	return nil
}

func (console *Console) viewFeedback(ctx context.Context) error {
	entries, err := console.service.FeedbackEntries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(console.out, "No feedback available.")
		return nil
	}
	for index, entry := range entries {
		fmt.Fprintf(console.out, "%d. %d stars - %s\n", index+1, entry.Stars, entry.Text)
	}
	return nil
}

func (console *Console) searchGuestByName() error {
	guest, err := console.readGuestName()
	if err != nil {
		return err
	}
	booking, err := console.service.GuestByName(guest)
	if err != nil {
		return err
	}
	console.printBookings([]hotel.Booking{booking})
	return nil
}

func (console *Console) searchGuestByPhone() error {
	phone, err := console.readPhone()
	if err != nil {
		return err
	}
	booking, err := console.service.GuestByPhone(phone)
	if err != nil {
		return err
	}
	console.printBookings([]hotel.Booking{booking})
	return nil
}

func (console *Console) printRooms(rooms []hotel.Room) {
	if len(rooms) == 0 {
		fmt.Fprintln(console.out, "No rooms.")
		return
	}
	fmt.Fprintf(console.out, "%-10s %-12s %-10s %-10s %s\n", "Room", "Type", "Price", "Capacity", "Status")
	for _, room := range rooms {
		fmt.Fprintf(console.out, "%-10d %-12s %-10.2f %-10d %s\n",
			room.Number.Int(), room.Type.String(), room.Price.Float64(), room.Capacity, roomStatus(room))
	}
}

func (console *Console) printBookings(bookings []hotel.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(console.out, "No bookings.")
		return
	}
	for _, booking := range bookings {
		fmt.Fprintf(console.out, "Name: %s, Phone: %s, Room: %d, Check-in: %s, Check-out: %s\n",
			booking.Guest.String(), booking.Phone.String(), booking.Room.Int(),
			booking.CheckIn.String(), booking.CheckOut.String())
	}
}

func (console *Console) printHistory(events []hotel.BookingEvent) {
	if len(events) == 0 {
		fmt.Fprintln(console.out, "No bookings this session.")
		return
	}
	for index, event := range events {
		fmt.Fprintf(console.out, "%d. %s booked room %d\n", index+1, event.Guest.String(), event.Room.Int())
	}
}

func roomStatus(room hotel.Room) string {
	switch {
	case room.UnderMaintenance:
		return "Under Maintenance"
	case room.Available:
		return "Available"
	default:
		return "Occupied"
	}
}
