package utils

import "strings"

// SafeRedirectPath проверяет путь возврата после логина.
// Разрешены только относительные пути внутри сайта: абсолютные URL,
// protocol-relative ("//host") и все, что содержит схему, заменяются
// на главную.
func SafeRedirectPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") {
		return "/"
	}
	if strings.HasPrefix(path, "//") {
		return "/"
	}
	if strings.Contains(path, ":") {
		return "/"
	}
	return path
}
