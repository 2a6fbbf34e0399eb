package booking

// TotalSteps is the number of steps in the booking flow.
const TotalSteps = 5

// Field names as they appear on the wire and in validation errors.
const (
	FieldHomeSize      = "homeSize"
	FieldBathrooms     = "bathrooms"
	FieldCleaningType  = "cleaningType"
	FieldCleaningNeeds = "cleaningNeeds"
	FieldIsNewCustomer = "isNewCustomer"
	FieldPreferredDate = "preferredDate"
	FieldTimeSlot      = "timeSlot"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldAddress       = "address"
)

// stepFields assigns each step the fields it gates advancement on. Step 3 is
// the add-on picker and requires nothing.
var stepFields = map[int][]string{
	1: {FieldHomeSize, FieldBathrooms},
	2: {FieldCleaningType, FieldCleaningNeeds},
	3: {},
	4: {FieldPreferredDate, FieldTimeSlot},
	5: {FieldName, FieldEmail, FieldPhone, FieldAddress},
}

// FieldsForStep returns the fields gating a single step.
func FieldsForStep(step int) []string {
	return stepFields[step]
}

// fieldsThrough returns the cumulative field set for steps 1..step. A user
// can move back and invalidate an earlier step, so forward movement always
// re-checks everything behind it.
func fieldsThrough(step int) []string {
	var fields []string
	for n := 1; n <= step && n <= TotalSteps; n++ {
		fields = append(fields, stepFields[n]...)
	}
	return fields
}
