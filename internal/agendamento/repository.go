package agendamento

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	BuscarSessaoPorToken(db *gorm.DB, token string) (*SessaoPortal, error)
	BuscarConhecimentoPorToken(db *gorm.DB, token string) (*Conhecimento, error)
	ConfirmarData(db *gorm.DB, token string, data time.Time) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarSessaoPorToken(db *gorm.DB, token string) (*SessaoPortal, error) {
	var s SessaoPortal
	err := db.Where("token = ?", token).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) BuscarConhecimentoPorToken(db *gorm.DB, token string) (*Conhecimento, error) {
	s, err := r.BuscarSessaoPorToken(db, token)
	if err != nil {
		return nil, err
	}
	var c Conhecimento
	err = db.Preload("NotasFiscais").First(&c, s.ConhecimentoID).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ConfirmarData(db *gorm.DB, token string, data time.Time) error {
	return db.Model(&SessaoPortal{}).
		Where("token = ?", token).
		Update("data_confirmada", data).Error
}
