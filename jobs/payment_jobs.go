package jobs

import (
	"log"

	"pgstay-server/database"
	"pgstay-server/services"
)

// GenerateMonthlyRentPayments raises this month's rent record for every
// active booking. Scheduled for the 1st of each month.
func GenerateMonthlyRentPayments() {
	log.Println("Running job: GenerateMonthlyRentPayments...")

	created, failed := services.NewPaymentService(database.DB).GenerateMonthlyRentPayments()
	log.Printf("Rent generation finished: %d created, %d failed.", created, failed)
}

// UpdateLateFees recomputes accrued late charges on overdue pending
// payments. Scheduled daily at midnight.
func UpdateLateFees() {
	log.Println("Running job: UpdateLateFees...")

	updated, failed := services.NewPaymentService(database.DB).UpdateLateFeesDaily()
	log.Printf("Late fee update finished: %d updated, %d failed.", updated, failed)
}
