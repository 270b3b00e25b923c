package verify

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	zhtranslations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/yanshicheng/catalog-nova/common/urn"
)

const (
	LocaleZH = "zh"
	LocaleEN = "en"
)

// ValidatorInstance 校验器与对应语言的翻译器
type ValidatorInstance struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// InitValidator 初始化校验器，注册默认翻译与自定义规则
func InitValidator(locale string) (*ValidatorInstance, error) {
	uni := ut.New(en.New(), en.New(), zh.New())
	trans, ok := uni.GetTranslator(locale)
	if !ok {
		return nil, fmt.Errorf("不支持的语言: %s", locale)
	}

	v := validator.New()
	// 使用 json tag 作为字段名，错误信息与请求字段保持一致
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	var err error
	switch locale {
	case LocaleZH:
		err = zhtranslations.RegisterDefaultTranslations(v, trans)
	default:
		err = entranslations.RegisterDefaultTranslations(v, trans)
	}
	if err != nil {
		return nil, fmt.Errorf("注册默认翻译失败: %w", err)
	}

	if err := registerUrn(v, trans, locale); err != nil {
		return nil, err
	}

	return &ValidatorInstance{Validate: v, Translator: trans}, nil
}

// registerUrn 注册 urn 校验规则
func registerUrn(v *validator.Validate, trans ut.Translator, locale string) error {
	if err := v.RegisterValidation("urn", func(fl validator.FieldLevel) bool {
		_, err := urn.Parse(fl.Field().String())
		return err == nil
	}); err != nil {
		return fmt.Errorf("注册 urn 校验失败: %w", err)
	}

	text := "{0} must be a valid urn"
	if locale == LocaleZH {
		text = "{0}必须是合法的urn"
	}
	return v.RegisterTranslation("urn", trans,
		func(ut ut.Translator) error {
			return ut.Add("urn", text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("urn", fe.Field())
			return t
		},
	)
}

// RemoveTopSaStr 翻译校验错误并去掉顶层结构体名，多条信息按字段排序后以分号连接
func RemoveTopSaStr(errs validator.ValidationErrors, trans ut.Translator) string {
	translated := errs.Translate(trans)
	keys := make([]string, 0, len(translated))
	for k := range translated {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, translated[k])
	}
	return strings.Join(msgs, "; ")
}
