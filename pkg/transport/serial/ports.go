package serial

import (
	"errors"
	"fmt"

	"go.bug.st/serial/enumerator"
)

// ErrNoPort indicates auto detection found no USB serial port.
var ErrNoPort = errors.New("no USB serial port found")

// PortInfo describes a serial port present on the system.
type PortInfo struct {
	Name         string `json:"name"`
	USB          bool   `json:"usb"`
	VID          string `json:"vid,omitempty"`
	PID          string `json:"pid,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Product      string `json:"product,omitempty"`
}

// String implements fmt.Stringer.
func (p PortInfo) String() string {
	if !p.USB {
		return p.Name
	}
	s := fmt.Sprintf("%s [%s:%s]", p.Name, p.VID, p.PID)
	if p.Product != "" {
		s += " " + p.Product
	}
	if p.SerialNumber != "" {
		s += " SN=" + p.SerialNumber
	}
	return s
}

var listDetailed = enumerator.GetDetailedPortsList

// ListPorts enumerates serial ports.
func ListPorts() ([]PortInfo, error) {
	details, err := listDetailed()
	if err != nil {
		return nil, err
	}
	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		ports = append(ports, PortInfo{
			Name:         d.Name,
			USB:          d.IsUSB,
			VID:          d.VID,
			PID:          d.PID,
			SerialNumber: d.SerialNumber,
			Product:      d.Product,
		})
	}
	return ports, nil
}

// Detect returns the name of the first USB serial port.
func Detect() (string, error) {
	ports, err := ListPorts()
	if err != nil {
		return "", err
	}
	for _, p := range ports {
		if p.USB {
			return p.Name, nil
		}
	}
	return "", ErrNoPort
}
