package viewmodels

// ProductViewModel is the transport form of a product. Image is the
// stored filename and is required for display, which is why update
// handlers copy the stored name onto the incoming view model before
// validating it. ImageUpload carries a base64 payload on create/update
// and is never echoed back populated by list/get.
type ProductViewModel struct {
	ID           string  `json:"id" form:"id" validate:"omitempty,uuid"`
	SupplierID   string  `json:"supplierId" form:"supplierId" validate:"required,uuid"`
	Name         string  `json:"name" form:"name" validate:"required,min=2,max=200"`
	Description  string  `json:"description" form:"description" validate:"required,min=2,max=1000"`
	Price        float64 `json:"price" form:"price" validate:"required,gt=0"`
	Active       bool    `json:"active" form:"active"`
	Image        string  `json:"imageFilename" form:"imageFilename" validate:"required"`
	ImageUpload  string  `json:"imageUpload,omitempty" form:"imageUpload"`
	SupplierName string  `json:"supplierName,omitempty"`
}

// ProductImageViewModel is the multipart create variant: the image
// arrives as a streamed file part, so the filename field is filled in by
// the handler rather than required from the client.
type ProductImageViewModel struct {
	ID          string  `json:"id" form:"id" validate:"omitempty,uuid"`
	SupplierID  string  `json:"supplierId" form:"supplierId" validate:"required,uuid"`
	Name        string  `json:"name" form:"name" validate:"required,min=2,max=200"`
	Description string  `json:"description" form:"description" validate:"required,min=2,max=1000"`
	Price       float64 `json:"price" form:"price" validate:"required,gt=0"`
	Active      bool    `json:"active" form:"active"`
	Image       string  `json:"imageFilename" form:"imageFilename"`
}

// AddressViewModel mirrors the embedded supplier address.
type AddressViewModel struct {
	Street     string `json:"street" validate:"required,min=2,max=200"`
	Number     string `json:"number" validate:"required,min=1,max=50"`
	Complement string `json:"complement,omitempty" validate:"omitempty,max=250"`
	ZipCode    string `json:"zipCode" validate:"required,len=8"`
	District   string `json:"district" validate:"required,min=2,max=100"`
	City       string `json:"city" validate:"required,min=2,max=100"`
	State      string `json:"state" validate:"required,min=2,max=50"`
}

// SupplierViewModel is the transport form of a supplier.
type SupplierViewModel struct {
	ID       string           `json:"id" validate:"omitempty,uuid"`
	Name     string           `json:"name" validate:"required,min=2,max=200"`
	Document string           `json:"document" validate:"required,min=11,max=14"`
	Active   bool             `json:"active"`
	Address  AddressViewModel `json:"address" validate:"required"`
}

// RegisterUserViewModel is the new-account request body.
type RegisterUserViewModel struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginUserViewModel is the sign-in request body.
type LoginUserViewModel struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
