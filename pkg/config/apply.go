package config

import (
	"log/slog"
	"strings"

	"osier-hq/beanlint/pkg/ignore"
)

// Apply populates the registry from the document, driving the six
// registry setters with the configured scopes. The registry is not
// frozen; the caller publishes it once all configuration sources are
// applied.
func Apply(cfg *Config, reg *ignore.Registry) {
	for _, bean := range cfg.Beans {
		reg.SetDefaultIgnore(bean.Class, bean.IgnoreAnnotations)
		if bean.ClassLevel != nil {
			reg.SetClassIgnore(bean.Class, flag(bean.ClassLevel.IgnoreAnnotations))
		}
		applyMembers(reg, bean.Class, bean.Fields)
		applyMembers(reg, bean.Class, bean.Getters)
		for _, m := range bean.Methods {
			applyMethod(reg, ignore.MethodMember(bean.Class, m.Name, m.ParameterTypes), m)
		}
		for _, c := range bean.Constructors {
			name := c.Name
			if name == "" {
				name = simpleName(bean.Class)
			}
			applyMethod(reg, ignore.MethodMember(bean.Class, name, c.ParameterTypes), c)
		}
	}
}

// BuildRegistry loads the document at path, populates a fresh registry
// with it and publishes the result. This is the startup entry point for
// callers that use a single configuration file.
func BuildRegistry(path string, logger *slog.Logger, opts ...ignore.Option) (*ignore.Registry, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	reg := ignore.NewRegistry(logger, opts...)
	Apply(cfg, reg)
	reg.Freeze()
	return reg, nil
}

func applyMembers(reg *ignore.Registry, class string, members []MemberConfig) {
	for _, m := range members {
		reg.SetMemberIgnore(ignore.Member{Class: class, Name: m.Name}, flag(m.IgnoreAnnotations))
	}
}

func applyMethod(reg *ignore.Registry, member ignore.Member, m MethodConfig) {
	for _, p := range m.Parameters {
		reg.SetParameterIgnore(member, p.Index, flag(p.IgnoreAnnotations))
	}
	if m.ReturnValue != nil {
		reg.SetReturnIgnore(member, flag(m.ReturnValue.IgnoreAnnotations))
	}
	if m.CrossParameter != nil {
		reg.SetCrossParameterIgnore(member, flag(m.CrossParameter.IgnoreAnnotations))
	}
}

// simpleName strips the package qualifier from a fully qualified class
// name.
func simpleName(class string) string {
	if i := strings.LastIndex(class, "."); i >= 0 {
		return class[i+1:]
	}
	return class
}
