package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BahriaResearchLab/hotelier/pkg/hotel"
)

// errInputEnd reports that the input stream ended mid-session.
var errInputEnd = errors.New("input ended")

func (console *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(console.out, prompt)
	if !console.scanner.Scan() {
		if err := console.scanner.Err(); err != nil {
			return "", err
		}
		return "", errInputEnd
	}
	return strings.TrimSpace(console.scanner.Text()), nil
}

func (console *Console) readInt(prompt string) (int, error) {
	for {
		line, err := console.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(console.out, "Invalid number.")
			continue
		}
		return value, nil
	}
}

func (console *Console) readPrice(prompt string) (hotel.Price, error) {
	for {
		line, err := console.readLine(prompt)
		if err != nil {
			return 0, err
		}
		raw, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(console.out, "Invalid amount.")
			continue
		}
		price, err := hotel.NewPrice(raw)
		if err != nil {
			fmt.Fprintln(console.out, "Invalid amount.")
			continue
		}
		return price, nil
	}
}

func (console *Console) readRoomNumber() (hotel.RoomNumber, error) {
	value, err := console.readInt("Room number: ")
	if err != nil {
		return hotel.RoomNumber{}, err
	}
	return hotel.NewRoomNumber(value)
}

func (console *Console) readGuestName() (hotel.GuestName, error) {
	line, err := console.readLine("Guest name: ")
	if err != nil {
		return hotel.GuestName{}, err
	}
	return hotel.NewGuestName(line)
}

func (console *Console) readPhone() (hotel.Phone, error) {
	line, err := console.readLine("Phone number: ")
	if err != nil {
		return hotel.Phone{}, err
	}
	return hotel.NewPhone(line)
}

func isInputEnd(err error) bool {
	return errors.Is(err, errInputEnd) || errors.Is(err, io.EOF)
}

// exitOnEOF treats end of input as a normal session end.
func exitOnEOF(err error) error {
	if isInputEnd(err) {
		return nil
	}
	return err
}
