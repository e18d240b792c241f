package services

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
)

// ShopName is printed at the top of every receipt.
const ShopName = "Coffee Shop"

// RenderReceipt writes a one-page PDF receipt for a paid order.
func RenderReceipt(w io.Writer, order models.Order, payment *models.Payment) error {
	if order.Status != models.OrderStatusPaid {
		return fmt.Errorf("order %s is not paid", order.Reference)
	}

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetTitle(fmt.Sprintf("Receipt %s", order.ShortReference()), false)
	pdf.SetCreator(ShopName, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, ShopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Order "+order.ShortReference(), "", 1, "C", false, 0, "")
	if order.PaidAt != nil {
		pdf.CellFormat(0, 6, order.PaidAt.Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")
	}
	if order.TableID != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Table #%d", *order.TableID), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 7, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(43, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(70, 7, item.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(43, 7, utils.FormatRupiah(item.Subtotal), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(85, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(43, 8, utils.FormatRupiah(order.TotalAmount), "T", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 9)
	method := order.PaymentMethod
	if m, ok := models.FindPaymentMethod(order.PaymentMethod); ok {
		method = m.Name
	}
	pdf.CellFormat(0, 5, "Paid with "+method, "", 1, "L", false, 0, "")
	if payment != nil {
		pdf.CellFormat(0, 5, "Payment ref "+payment.ReferenceID, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5, fmt.Sprintf("%s <%s>", order.CustomerName, order.CustomerEmail), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}
