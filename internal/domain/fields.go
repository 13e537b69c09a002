package domain

// Field form/request field name; matches the JSON names of the booking API
type Field string

const (
	FieldResourceRef     Field = "resourceRef"
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldCheckIn         Field = "checkIn"
	FieldCheckOut        Field = "checkOut"
	FieldDate            Field = "date"
	FieldTimeSlot        Field = "timeSlot"
	FieldGuests          Field = "guests"
	FieldPartySize       Field = "partySize"
	FieldParticipants    Field = "participants"
	FieldPassengers      Field = "passengers"
	FieldEventType       Field = "eventType"
	FieldRoomNumber      Field = "roomNumber"
	FieldCartLines       Field = "cartLines"
	FieldVehicleClass    Field = "vehicleClass"
	FieldPickupLocation  Field = "pickupLocation"
	FieldDropoffLocation Field = "dropoffLocation"
	FieldFlightNumber    Field = "flightNumber"
	FieldNotes           Field = "notes"
	FieldPaymentMethod   Field = "paymentMethod"
	FieldPaymentPhone    Field = "paymentPhone"
	FieldAccountNumber   Field = "accountNumber"
	FieldTotalAmount     Field = "totalAmount"
)
