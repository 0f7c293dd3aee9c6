package caster

import (
	"fmt"
	"net/netip"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bargeparse/internal/model"
)

type severity string

func (severity) Choices() []string {
	return []string{"low", "high"}
}

func mustResolve(t *testing.T, typ reflect.Type) *model.Caster {
	t.Helper()
	c, err := Resolve(typ, nil)
	require.NoError(t, err)
	return c
}

func TestResolve_Scalars(t *testing.T) {
	testCases := []struct {
		name string
		typ  reflect.Type
		raw  string
		want any
	}{
		{"string", reflect.TypeOf(""), "hello", "hello"},
		{"int", reflect.TypeOf(0), "-42", -42},
		{"uint16", reflect.TypeOf(uint16(0)), "8080", uint16(8080)},
		{"float64", reflect.TypeOf(0.0), "3.5", 3.5},
		{"byte slice", reflect.TypeOf([]byte(nil)), "raw", []byte("raw")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := mustResolve(t, tc.typ)

			v, err := c.Convert(tc.raw)

			require.NoError(t, err)
			assert.Equal(t, model.CastScalar, c.Kind)
			assert.Equal(t, tc.want, v.Interface())
		})
	}
}

func TestResolve_ScalarFailures(t *testing.T) {
	c := mustResolve(t, reflect.TypeOf(0))

	_, err := c.Convert("twelve")

	var castErr *model.CastError
	require.ErrorAs(t, err, &castErr)
	assert.Equal(t, "invalid integer value: 'twelve'", err.Error())
}

func TestResolve_UnsupportedType(t *testing.T) {
	_, err := Resolve(reflect.TypeOf(make(chan int)), nil)

	var schemaErr *model.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestResolve_Dates(t *testing.T) {
	c := mustResolve(t, reflect.TypeOf(model.Date{}))
	require.Equal(t, model.CastDate, c.Kind)

	t.Run("delimiter tolerance", func(t *testing.T) {
		want := model.NewDate(2000, time.January, 1)
		for _, raw := range []string{"2000-01-01", "2000/01/01", "2000.01.01", "2000x01x01"} {
			v, err := c.Convert(raw)

			require.NoError(t, err, raw)
			assert.Equal(t, want, v.Interface(), raw)
		}
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, raw := range []string{"", "2000-01", "2000-01-01-05", "2000--01-01", "-2000-01-01", "2000-01-01-"} {
			_, err := c.Convert(raw)

			var castErr *model.CastError
			require.ErrorAs(t, err, &castErr, raw)
		}
	})

	t.Run("rejects normalized days", func(t *testing.T) {
		_, err := c.Convert("2023-02-30")

		var castErr *model.CastError
		require.ErrorAs(t, err, &castErr)
	})

	t.Run("rejects oversized digit groups", func(t *testing.T) {
		_, err := c.Convert("99999999999999999999-01-01")

		var castErr *model.CastError
		require.ErrorAs(t, err, &castErr)
	})
}

func TestResolve_DateTime(t *testing.T) {
	c := mustResolve(t, reflect.TypeOf(time.Time{}))
	require.Equal(t, model.CastDateTime, c.Kind)

	v, err := c.Convert("2000-01-01-12-30-59")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, 1, 1, 12, 30, 59, 0, time.UTC), v.Interface())

	_, err = c.Convert("2000-01-01")
	var castErr *model.CastError
	require.ErrorAs(t, err, &castErr)
}

func TestResolve_Enum(t *testing.T) {
	c := mustResolve(t, reflect.TypeOf(severity("")))

	require.Equal(t, model.CastEnumChoice, c.Kind)
	assert.Equal(t, []string{"low", "high"}, c.Choices)

	v, err := c.Convert("low")
	require.NoError(t, err)
	assert.Equal(t, severity("low"), v.Interface())

	_, err = c.Convert("medium")
	var choiceErr *model.InvalidChoiceError
	require.ErrorAs(t, err, &choiceErr)
	assert.Equal(t, "invalid choice: 'medium' (choose from 'low', 'high')", err.Error())
}

func TestResolve_Lists(t *testing.T) {
	t.Run("slice of int", func(t *testing.T) {
		c := mustResolve(t, reflect.TypeOf([]int(nil)))

		require.Equal(t, model.CastList, c.Kind)
		require.NotNil(t, c.Elem)
		assert.Equal(t, model.CastScalar, c.Elem.Kind)
		assert.True(t, c.IsList())
	})

	t.Run("slice of enum keeps choices", func(t *testing.T) {
		c := mustResolve(t, reflect.TypeOf([]severity(nil)))

		require.NotNil(t, c.Elem)
		assert.Equal(t, []string{"low", "high"}, c.Elem.Choices)
	})

	t.Run("array becomes tuple", func(t *testing.T) {
		c := mustResolve(t, reflect.TypeOf([2]float64{}))

		require.Equal(t, model.CastTuple, c.Kind)
		assert.Equal(t, 2, c.TupleLen)
	})

	t.Run("nested list rejected", func(t *testing.T) {
		_, err := Resolve(reflect.TypeOf([][]int(nil)), nil)

		var schemaErr *model.SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})
}

func TestResolve_Factory(t *testing.T) {
	type endpoint struct {
		host string
	}
	factories := map[reflect.Type]FactoryFunc{
		reflect.TypeOf(endpoint{}): func(raw string) (any, error) {
			if raw == "" {
				return nil, fmt.Errorf("empty endpoint")
			}
			return endpoint{host: raw}, nil
		},
	}

	c, err := Resolve(reflect.TypeOf(endpoint{}), factories)
	require.NoError(t, err)
	require.Equal(t, model.CastFactory, c.Kind)

	v, err := c.Convert("db.local")
	require.NoError(t, err)
	assert.Equal(t, endpoint{host: "db.local"}, v.Interface())

	_, err = c.Convert("")
	var castErr *model.CastError
	require.ErrorAs(t, err, &castErr)
}

func TestResolve_FactoryBeatsEnum(t *testing.T) {
	factories := map[reflect.Type]FactoryFunc{
		reflect.TypeOf(severity("")): func(raw string) (any, error) {
			return severity("forced"), nil
		},
	}

	c, err := Resolve(reflect.TypeOf(severity("")), factories)

	require.NoError(t, err)
	assert.Equal(t, model.CastFactory, c.Kind)
	assert.Nil(t, c.Choices)
}

func TestResolve_TextUnmarshaler(t *testing.T) {
	c := mustResolve(t, reflect.TypeOf(netip.Addr{}))

	require.Equal(t, model.CastFactory, c.Kind)

	v, err := c.Convert("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), v.Interface())

	_, err = c.Convert("not-an-ip")
	var castErr *model.CastError
	require.ErrorAs(t, err, &castErr)
}

func descriptorFor(t *testing.T, typ reflect.Type) *model.ArgumentDescriptor {
	t.Helper()
	c := mustResolve(t, typ)
	d := &model.ArgumentDescriptor{
		Param:  &model.Parameter{Name: "value", Type: typ},
		Caster: c,
	}
	if c.IsList() {
		d.Arity = model.List
	}
	return d
}

func TestApply_List(t *testing.T) {
	d := descriptorFor(t, reflect.TypeOf([]int(nil)))

	v, err := Apply(d, []string{"1", "2", "3"})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v.Interface())
}

func TestApply_EmptyList(t *testing.T) {
	d := descriptorFor(t, reflect.TypeOf([]string(nil)))

	v, err := Apply(d, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{}, v.Interface())
}

func TestApply_Tuple(t *testing.T) {
	d := descriptorFor(t, reflect.TypeOf([2]int{}))

	v, err := Apply(d, []string{"3", "4"})
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 4}, v.Interface())

	_, err = Apply(d, []string{"3"})
	var castErr *model.CastError
	require.ErrorAs(t, err, &castErr)
}

func TestApply_SingleArityContract(t *testing.T) {
	d := descriptorFor(t, reflect.TypeOf(0))

	_, err := Apply(d, []string{"1", "2"})

	var bindErr *model.BindingError
	require.ErrorAs(t, err, &bindErr)
}
