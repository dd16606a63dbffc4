package viewmodels

import "loja/internal/models"

// ToProductViewModel maps a persistence product to its transport form.
// SupplierName is computed from the preloaded supplier and has no
// counterpart on the entity.
func ToProductViewModel(p models.Product) ProductViewModel {
	return ProductViewModel{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Active:       p.Active,
		Image:        p.Image,
		SupplierName: p.Supplier.Name,
	}
}

// ToProductViewModels maps a slice of products.
func ToProductViewModels(products []models.Product) []ProductViewModel {
	views := make([]ProductViewModel, 0, len(products))
	for _, p := range products {
		views = append(views, ToProductViewModel(p))
	}
	return views
}

// ToModel maps the view model back to a persistence product. The
// supplier name is computed on the way out and is dropped here.
func (vm ProductViewModel) ToModel() models.Product {
	return models.Product{
		ID:          vm.ID,
		SupplierID:  vm.SupplierID,
		Name:        vm.Name,
		Description: vm.Description,
		Price:       vm.Price,
		Active:      vm.Active,
		Image:       vm.Image,
	}
}

// ToModel maps the multipart variant back to a persistence product.
func (vm ProductImageViewModel) ToModel() models.Product {
	return models.Product{
		ID:          vm.ID,
		SupplierID:  vm.SupplierID,
		Name:        vm.Name,
		Description: vm.Description,
		Price:       vm.Price,
		Active:      vm.Active,
		Image:       vm.Image,
	}
}

// ToSupplierViewModel maps a persistence supplier to its transport form.
func ToSupplierViewModel(s models.Supplier) SupplierViewModel {
	return SupplierViewModel{
		ID:       s.ID,
		Name:     s.Name,
		Document: s.Document,
		Active:   s.Active,
		Address: AddressViewModel{
			Street:     s.Address.Street,
			Number:     s.Address.Number,
			Complement: s.Address.Complement,
			ZipCode:    s.Address.ZipCode,
			District:   s.Address.District,
			City:       s.Address.City,
			State:      s.Address.State,
		},
	}
}

// ToSupplierViewModels maps a slice of suppliers.
func ToSupplierViewModels(suppliers []models.Supplier) []SupplierViewModel {
	views := make([]SupplierViewModel, 0, len(suppliers))
	for _, s := range suppliers {
		views = append(views, ToSupplierViewModel(s))
	}
	return views
}

// ToModel maps the view model back to a persistence supplier.
func (vm SupplierViewModel) ToModel() models.Supplier {
	return models.Supplier{
		ID:       vm.ID,
		Name:     vm.Name,
		Document: vm.Document,
		Active:   vm.Active,
		Address: models.Address{
			Street:     vm.Address.Street,
			Number:     vm.Address.Number,
			Complement: vm.Address.Complement,
			ZipCode:    vm.Address.ZipCode,
			District:   vm.Address.District,
			City:       vm.Address.City,
			State:      vm.Address.State,
		},
	}
}
