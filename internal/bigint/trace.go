package bigint

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/agbru/bigcalc/internal/bigint")

// TracedMul is Mul wrapped in a span tagged with both operands' digit
// counts, for the two multiplication paths (Comba, schoolbook) whose
// cost depends on operand size in a way worth seeing on a trace.
func TracedMul(ctx context.Context, dest, a, b *Int) error {
	_, span := tracer.Start(ctx, "bigint.Mul", trace.WithAttributes(
		attribute.Int("bigint.a_digits", a.used),
		attribute.Int("bigint.b_digits", b.used),
	))
	defer span.End()

	err := Mul(dest, a, b)
	recordOutcome(span, err, dest)
	return err
}

// TracedDivMod is DivMod wrapped in a span tagged with the dividend's and
// divisor's digit counts.
func TracedDivMod(ctx context.Context, q, r *Int, n, d *Int) error {
	_, span := tracer.Start(ctx, "bigint.DivMod", trace.WithAttributes(
		attribute.Int("bigint.n_digits", n.used),
		attribute.Int("bigint.d_digits", d.used),
	))
	defer span.End()

	err := DivMod(q, r, n, d)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// TracedFactorial is Factorial wrapped in a span tagged with n and the
// resulting digit count, the two numbers that determine how deep the
// binary-split recursion and how wide the final product end up.
func TracedFactorial(ctx context.Context, res *Int, n uint64) error {
	_, span := tracer.Start(ctx, "bigint.Factorial", trace.WithAttributes(
		attribute.Int64("bigint.n", int64(n)),
	))
	defer span.End()

	err := Factorial(res, n)
	recordOutcome(span, err, res)
	return err
}

func recordOutcome(span trace.Span, err error, result *Int) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(attribute.Int("bigint.result_digits", result.used))
}
