package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
)

var (
	trans ut.Translator
	mu    sync.RWMutex
)

var _ binding.StructValidator = (*defaultValidator)(nil)

// defaultValidator 替换 gin 默认的校验器，增加错误信息翻译
type defaultValidator struct {
	once     sync.Once
	lang     string
	validate *validator.Validate
}

func (v *defaultValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

func (v *defaultValidator) Engine() any {
	v.lazyinit()
	return v.validate
}

func (v *defaultValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName("binding")
		// 错误信息中使用 json 字段名
		v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
		t := newTranslator(v.validate, v.lang)
		mu.Lock()
		trans = t
		mu.Unlock()
	})
}

func newTranslator(validate *validator.Validate, lang string) ut.Translator {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, zh.New())
	t, ok := uni.GetTranslator(lang)
	if !ok {
		t, _ = uni.GetTranslator("en")
		lang = "en"
	}
	switch lang {
	case "zh":
		_ = zhTranslations.RegisterDefaultTranslations(validate, t)
	default:
		_ = enTranslations.RegisterDefaultTranslations(validate, t)
	}
	return t
}

// LazyInitGinValidator 替换 gin 的校验器，lang 支持 en / zh
func LazyInitGinValidator(lang string) {
	v := &defaultValidator{lang: lang}
	v.lazyinit()
	binding.Validator = v
}

// Translate 将校验错误翻译成可读的提示信息，多个错误使用 ; 分隔
func Translate(err error) string {
	if err == nil {
		return ""
	}
	errs, ok := err.(validator.ValidationErrors)
	mu.RLock()
	t := trans
	mu.RUnlock()
	if !ok || t == nil {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Translate(t))
	}
	return strings.Join(msgs, "; ")
}
