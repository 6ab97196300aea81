package models

// Field идентификатор поля платежной формы.
// Значения совпадают с json-именами полей FormValues.
type Field string

const (
	FieldCardNumber Field = "cardNumber"
	FieldCVV        Field = "cvv"
	FieldExpiryDate Field = "expiryDate"
	FieldAmount     Field = "amount"
	FieldCurrency   Field = "currency"
)

// Fields поля формы в порядке отображения
var Fields = []Field{FieldCardNumber, FieldCVV, FieldExpiryDate, FieldAmount, FieldCurrency}

func (f Field) String() string {
	return string(f)
}
