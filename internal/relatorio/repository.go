package relatorio

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *ConfiguracaoRelatorio) error
	ListarTodas(db *gorm.DB) ([]ConfiguracaoRelatorio, error)
	BuscarPorID(db *gorm.DB, id uint) (*ConfiguracaoRelatorio, error)
	Atualizar(db *gorm.DB, id uint, nova ConfiguracaoRelatorio) error
	Remover(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *ConfiguracaoRelatorio) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]ConfiguracaoRelatorio, error) {
	var configuracoes []ConfiguracaoRelatorio
	err := db.Find(&configuracoes).Error
	return configuracoes, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*ConfiguracaoRelatorio, error) {
	var c ConfiguracaoRelatorio
	err := db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, nova ConfiguracaoRelatorio) error {
	return db.Model(&ConfiguracaoRelatorio{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nome":           nova.Nome,
		"tipo_relatorio": nova.TipoRelatorio,
		"destinatarios":  nova.Destinatarios,
		"agenda_cron":    nova.AgendaCron,
		"ativo":          nova.Ativo,
	}).Error
}

func (r *repositoryImpl) Remover(db *gorm.DB, id uint) error {
	return db.Delete(&ConfiguracaoRelatorio{}, id).Error
}
