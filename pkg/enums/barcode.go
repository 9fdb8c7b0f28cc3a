package enums

import "fmt"

// Barcode is a tagged union over UPCA and QRCode.
type Barcode interface {
	barcode()
}

// UPCA is a linear barcode carrying four integers.
type UPCA struct {
	NumberSystem int
	Manufacturer int
	Product      int
	Check        int
}

func (UPCA) barcode() {}

// QRCode carries its product code.
type QRCode struct {
	ProductCode string
}

func (QRCode) barcode() {}

// DescribeBarcode extracts the associated values of whichever variant b holds.
func DescribeBarcode(b Barcode) string {
	switch code := b.(type) {
	case UPCA:
		return fmt.Sprintf("UPC-A: %d, %d, %d, %d.", code.NumberSystem, code.Manufacturer, code.Product, code.Check)
	case QRCode:
		return fmt.Sprintf("QR code: %s.", code.ProductCode)
	default:
		return "unknown barcode"
	}
}
