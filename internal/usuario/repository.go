package usuario

import "gorm.io/gorm"

type Repository interface {
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	Criar(db *gorm.DB, u *Usuario) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	err := db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, u *Usuario) error {
	return db.Create(u).Error
}
