package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Имена встроенных шаблонов писем.
const (
	TemplateConfirmEmail        = "confirm_email"
	TemplateResetPassword       = "reset_password"
	TemplateContactNotification = "contact_notification"
)

// TemplateManager реализует TemplateRenderer для шаблонов писем
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер с встроенными шаблонами
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, body := range builtinTemplates {
		// Встроенные шаблоны статичны, ошибка парсинга невозможна.
		_ = tm.AddTemplate(name, body)
	}

	return tm
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

var builtinTemplates = map[string]string{
	TemplateConfirmEmail: `<html><body>
<h2>¡Bienvenido a Rapifix!</h2>
<p>Hola {{.Name}},</p>
<p>Confirmá tu email haciendo clic en el siguiente enlace:</p>
<p><a href="{{.ConfirmURL}}">Confirmar mi email</a></p>
<p>Si no creaste esta cuenta, ignorá este mensaje.</p>
</body></html>`,

	TemplateResetPassword: `<html><body>
<h2>Restablecer contraseña</h2>
<p>Hola {{.Name}},</p>
<p>Recibimos un pedido para restablecer tu contraseña. El enlace vence en una hora:</p>
<p><a href="{{.ResetURL}}">Crear nueva contraseña</a></p>
<p>Si no fuiste vos, ignorá este mensaje.</p>
</body></html>`,

	TemplateContactNotification: `<html><body>
<h2>Nuevo contacto en Rapifix</h2>
<p>Hola {{.ProfessionalName}},</p>
<p><strong>{{.SearcherName}}</strong> te escribió a través de tu perfil:</p>
<blockquote>{{.Message}}</blockquote>
<p>Datos de contacto: {{.SearcherEmail}}{{if .SearcherPhone}} / {{.SearcherPhone}}{{end}}</p>
<p><a href="{{.DashboardURL}}">Ver todos tus contactos</a></p>
</body></html>`,
}
