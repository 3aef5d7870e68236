package schedule

// ClassifySlot decide o rótulo de um candidato contra todos os agendamentos
// confirmados do dia. Precedência: exact-match > contained >
// insufficient-gap > available.
//
//   - exact-match: o slot começa exatamente no início de um agendamento
//   - contained: o início do slot cai estritamente dentro de um agendamento
//   - insufficient-gap: o slot começa antes de um agendamento mas a duração
//     do serviço invadiria o intervalo dele
func ClassifySlot(s Slot, bookings []Booking) Outcome {
	outcome := OutcomeAvailable

	for _, b := range bookings {
		switch {
		case s.TimeMin == b.StartMin:
			// precedência máxima, nada supera
			return OutcomeExactMatch

		case b.StartMin < s.TimeMin && s.TimeMin < b.EndMin():
			if OutcomeContained > outcome {
				outcome = OutcomeContained
			}

		case s.TimeMin < b.StartMin && s.EndMin() > b.StartMin:
			if OutcomeInsufficientGap > outcome {
				outcome = OutcomeInsufficientGap
			}
		}
	}

	return outcome
}

// Classify anota a sequência inteira, preservando a ordem de geração
func Classify(slots []Slot, bookings []Booking) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		s.Outcome = ClassifySlot(s, bookings)
		out[i] = s
	}
	return out
}
