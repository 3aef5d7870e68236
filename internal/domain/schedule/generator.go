package schedule

// SlotIntervalMin é o passo fixo de geração de slots
const SlotIntervalMin = 30

// GenerateSlots produz os slots candidatos de um dia: para cada janela,
// avança de SlotIntervalMin em SlotIntervalMin enquanto o passo seguinte
// couber na janela, e emite um candidato por serviço que ainda caiba até o
// fim da janela.
//
// Função pura: sem janelas ativas o resultado é vazio (dia fechado, não é
// erro). Janelas sobrepostas são tratadas de forma independente — duplicatas
// vindas de dados ruins passam adiante, não é papel do gerador deduplicar.
func GenerateSlots(windows []Window, services []ServiceSpec) []Slot {
	var slots []Slot

	for _, w := range windows {
		for step := w.StartMin; step+SlotIntervalMin <= w.EndMin; step += SlotIntervalMin {
			for _, svc := range services {
				if step+svc.DurationMin <= w.EndMin {
					slots = append(slots, Slot{
						TimeMin: step,
						Service: svc,
					})
				}
			}
		}
	}

	return slots
}
