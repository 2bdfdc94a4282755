package validation

// One schema per entity, mirroring the database contract: every foreign key
// is required, dates and amounts are optional but typed.

var CustomerSchema = Schema{
	"user_id":            ID(),
	"account_manager_id": ID(),
	"meter_reader_id":    ID(),
	"address":            String(),
	"city":               String(),
	"state":              String(),
	"zip_code":           String(),
}

var MeterReadingSchema = Schema{
	"customer_id":     ID(),
	"reading_date":    Date(),
	"reading_value":   Integer(),
	"bill_calculated": Boolean(),
	"bill_amount":     Integer(),
}

var BillSchema = Schema{
	"customer_id":      ID(),
	"meter_reading_id": ID(),
	"bill_date":        Date(),
	"bill_amount":      Integer(),
	"bill_paid":        Boolean(),
}

var AssignmentSchema = Schema{
	"customer_id":        ID(),
	"account_manager_id": ID(),
	"meter_reader_id":    ID(),
	"assignment_date":    Date(),
}

var UserSchema = Schema{
	"email":      ID(),
	"first_name": String(),
	"last_name":  String(),
	"phone":      String(),
	"role":       String(),
	"company_id": String(),
}

var CompanySchema = Schema{
	"name":        ID(),
	"description": String(),
	"image":       String(),
	"tenant_id":   String(),
}

// ForEntity returns the schema for an internal entity name (the singular
// form produced by ConvertRouteToEntity). Unknown names get a nil schema,
// which validates everything.
func ForEntity(entity string) Schema {
	switch entity {
	case "customer":
		return CustomerSchema
	case "meter_reading":
		return MeterReadingSchema
	case "bill":
		return BillSchema
	case "assignment":
		return AssignmentSchema
	case "user":
		return UserSchema
	case "company":
		return CompanySchema
	default:
		return nil
	}
}
