package i18n

// The catalog carries the full translation set for every offered language.
var locales = map[string]locale{
	"English": {
		name:       "English",
		nativeName: "English",
		iso:        "en",
		genders:    []string{"Male", "Female", "Other"},
		messages: map[string]string{
			KeyWelcome:        "Welcome to Museum Concierge. How can I assist you today?",
			KeyStart:          "Start Booking",
			KeyLangSelect:     "Which language would you prefer to continue in?",
			KeyExperience:     "What type of experience are you looking for?",
			KeyDate:           "Excellent choice: {type}. For which date would you like to book?",
			KeyGuests:         "How many guests will be joining us today?",
			KeyTotal:          "Total for {qty} guests: ₹{total}. Shall we proceed to secure payment?",
			KeyConfirmPay:     "Confirm & Pay",
			KeyCancel:         "Cancel",
			KeySignIn:         "Please sign in with Google to complete your booking.",
			KeySignInBtn:      "Sign In with Google",
			KeyPaying:         "Proceeding to our secure gateway...",
			KeySuccess:        "Payment Successful! Your digital golden key has been sent to your email.",
			KeyConfirmed:      "Booking Confirmed",
			KeyError:          "Apologies, there was an issue securing your booking. Please try again.",
			KeyCancelled:      "Payment cancelled or dismissed. No tickets were booked.",
			KeyNoted:          "No problem. Your booking has been cancelled. How else can I help?",
			KeyReopen:         "This session has ended. To start a new booking, please reopen the concierge.",
			KeySoldOut:        "Apologies, {type} is completely booked for {date}. Please select another date or experience.",
			KeyGuestName:      "What is the full name of Guest #{index}?",
			KeyGuestGender:    "What is the gender of {name}?",
			KeyGuestAge:       "And what is the age of {name}?",
			KeyAgeWarning:     "Please enter a valid age (number) for {name}.",
			KeyNotEnoughSpots: "Apologies, there are only {available} spots remaining for this experience. Please enter a number between 1 and {available}.",
			KeyInvalidNumber:  "Please enter a valid number for the number of guests.",
			KeyMore:           "More",
		},
	},
	"French": {
		name:       "French",
		nativeName: "Français",
		iso:        "fr",
		genders:    []string{"Masculin", "Féminin", "Autre"},
		messages: map[string]string{
			KeyWelcome:        "Bienvenue au Concierge Museum. Comment puis-je vous aider aujourd'hui ?",
			KeyStart:          "Démarrer la réservation",
			KeyLangSelect:     "Dans quelle langue préférez-vous continuer ?",
			KeyExperience:     "Quel type d'expérience recherchez-vous ?",
			KeyDate:           "Excellent choix : {type}. Pour quelle date souhaitez-vous réserver ?",
			KeyGuests:         "Combien d'invités se joindront à nous aujourd'hui ?",
			KeyTotal:          "Total pour {qty} invités : ₹{total}. Allons-nous procéder au paiement sécurisé ?",
			KeyConfirmPay:     "Confirmer et payer",
			KeyCancel:         "Annuler",
			KeySignIn:         "Veuillez vous connecter avec Google pour finaliser votre réservation.",
			KeySignInBtn:      "Se connecter avec Google",
			KeyPaying:         "Passage à notre passerelle sécurisée...",
			KeySuccess:        "Paiement réussi ! Votre clé dorée numérique a été envoyée à votre adresse e-mail.",
			KeyConfirmed:      "Réservation confirmée",
			KeyError:          "Toutes nos excuses, un problème est survenu lors de la sécurisation de votre réservation. Veuillez réessayer.",
			KeyCancelled:      "Paiement annulé ou rejeté. Aucun billet n'a été réservé.",
			KeyNoted:          "Pas de problème. Votre réservation a été annulée. Comment puis-je vous aider d'autre ?",
			KeyReopen:         "Cette séance est terminée. Pour recommencer une réservation, veuillez rouvrir le concierge.",
			KeySoldOut:        "Désolé, {type} est complet pour le {date}. Veuillez choisir une autre date.",
			KeyGuestName:      "Quel est le nom complet de l'invité n°{index} ?",
			KeyGuestGender:    "Quel est le sexe de {name} ?",
			KeyGuestAge:       "Et quel est l'âge de {name} ?",
			KeyAgeWarning:     "Veuillez saisir un âge valide (nombre) pour {name}.",
			KeyNotEnoughSpots: "Désolé, il ne reste que {available} places pour cette expérience. Veuillez saisir un nombre entre 1 et {available}.",
			KeyInvalidNumber:  "Veuillez saisir un nombre valide pour le nombre d'invités.",
			KeyMore:           "Plus",
		},
	},
	"Spanish": {
		name:       "Spanish",
		nativeName: "Español",
		iso:        "es",
		genders:    []string{"Masculino", "Femenino", "Otro"},
		messages: map[string]string{
			KeyWelcome:        "Bienvenido a Concierge Museum. ¿Cómo puedo ayudarte hoy?",
			KeyStart:          "Comenzar reserva",
			KeyLangSelect:     "¿En qué idioma preferiría continuar?",
			KeyExperience:     "¿Qué tipo de experiencia estás buscando?",
			KeyDate:           "Excelente elección: {type}. ¿Para qué fecha te gustaría reservar?",
			KeyGuests:         "¿Cuántos invitados se unirán a nosotros hoy?",
			KeyTotal:          "Total para {qty} invitados: ₹{total}. ¿Procedemos al pago seguro?",
			KeyConfirmPay:     "Confirmar y pagar",
			KeyCancel:         "Cancelar",
			KeySignIn:         "Inicie sesión con Google para completar su reserva.",
			KeySignInBtn:      "Iniciar sesión con Google",
			KeyPaying:         "Pasando a nuestra pasarela segura...",
			KeySuccess:        "¡Pago exitoso! Su llave dorada digital ha sido enviada a su correo electrónico.",
			KeyConfirmed:      "Reserva confirmada",
			KeyError:          "Disculpe, hubo un problema al asegurar su reserva. Por favor, inténtelo de nuevo.",
			KeyCancelled:      "Pago cancelado o descartado. No se reservaron entradas.",
			KeyNoted:          "No hay problema. Su reserva ha sido cancelada. ¿En qué más puedo ayudarte?",
			KeyReopen:         "Esta sesión ha finalizado. Para iniciar una nueva reserva, vuelva a abrir el conserje.",
			KeySoldOut:        "Lo sentimos, {type} está lleno para el {date}. Por favor seleccione otra fecha.",
			KeyGuestName:      "¿Cuál es el nombre completo del invitado #{index}?",
			KeyGuestGender:    "¿Cuál es el género de {name}?",
			KeyGuestAge:       "¿Y cuál es la edad de {name}?",
			KeyAgeWarning:     "Por favor, introduce una edad válida (número) para {name}.",
			KeyNotEnoughSpots: "Lo sentimos, solo quedan {available} plazas para esta experiencia. Introduce un número entre 1 y {available}.",
			KeyInvalidNumber:  "Por favor, introduce un número válido para el número de invitados.",
			KeyMore:           "Más",
		},
	},
	"Hindi": {
		name:       "Hindi",
		nativeName: "हिंदी",
		iso:        "hi",
		genders:    []string{"पुरुष", "महिला", "अन्य"},
		messages: map[string]string{
			KeyWelcome:        "Museum द्वारपाल में आपका स्वागत है। मैं आज आपकी क्या सहायता कर सकता हूँ?",
			KeyStart:          "बुकिंग शुरू करें",
			KeyLangSelect:     "आप किस भाषा में आगे बढ़ना पसंद करेंगे?",
			KeyExperience:     "आप किस प्रकार का अनुभव खोज रहे हैं?",
			KeyDate:           "उत्कृष्ट विकल्प: {type}। आप किस तारीख के लिए बुक करना चाहेंगे?",
			KeyGuests:         "आज हमारे साथ कितने मेहमान शामिल होंगे?",
			KeyTotal:          "{qty} मेहमानों के लिए कुल: ₹{total}। क्या हम सुरक्षित भुगतान के लिए आगे बढ़ें?",
			KeyConfirmPay:     "पुष्टि करें और भुगतान करें",
			KeyCancel:         "रद्द करें",
			KeySignIn:         "अपनी बुकिंग पूरी करने के लिए कृपया Google के साथ साइन इन करें।",
			KeySignInBtn:      "Google के साथ साइन इन करें",
			KeyPaying:         "हमारे सुरक्षित गेटवे पर आगे बढ़ रहे हैं...",
			KeySuccess:        "भुगतान सफल! आपकी डिजिटल गोल्डन कुंजी आपके ईमेल पर भेज दी गई है।",
			KeyConfirmed:      "बुकिंग की पुष्टि हो गई",
			KeyError:          "क्षमा करें, आपकी बुकिंग सुरक्षित करने में समस्या हुई। कृपया पुनः प्रयास करें।",
			KeyCancelled:      "भुगतान रद्द कर दिया गया। कोई टिकट बुक नहीं किया गया।",
			KeyNoted:          "कोई बात नहीं। आपकी बुकिंग रद्द कर दी गई है। मैं आपकी और क्या सहायता कर सकता हूँ?",
			KeyReopen:         "यह सत्र समाप्त हो गया है। नई बुकिंग शुरू करने के लिए, कृपया द्वारपाल को फिर से खोलें।",
			KeySoldOut:        "क्षमा करें, {type} {date} के लिए पूरी तरह से भर गया है। कृपया दूसरी तारीख चुनें।",
			KeyGuestName:      "मेहमान #{index} का पूरा नाम क्या है?",
			KeyGuestGender:    "{name} का लिंग क्या है?",
			KeyGuestAge:       "और {name} की उम्र क्या है?",
			KeyAgeWarning:     "{name} के लिए कृपया एक वैध उम्र (संख्या) दर्ज करें।",
			KeyNotEnoughSpots: "क्षमा करें, इस अनुभव के लिए केवल {available} स्थान शेष हैं। कृपया 1 और {available} के बीच कोई संख्या दर्ज करें।",
			KeyInvalidNumber:  "कृपया मेहमानों की संख्या के लिए एक मान्य संख्या दर्ज करें।",
			KeyMore:           "और",
		},
	},
	"German": {
		name:       "German",
		nativeName: "Deutsch",
		iso:        "de",
		genders:    []string{"Männlich", "Weiblich", "Anders"},
		messages: map[string]string{
			KeyWelcome:        "Willkommen beim Museum Concierge. Wie kann ich Ihnen heute helfen?",
			KeyStart:          "Buchung starten",
			KeyLangSelect:     "In welcher Sprache möchten Sie fortfahren?",
			KeyExperience:     "Welche Art von Erlebnis suchen Sie?",
			KeyDate:           "Ausgezeichnete Wahl: {type}. Für welches Datum möchten Sie buchen?",
			KeyGuests:         "Wie viele Gäste werden heute bei uns sein?",
			KeyTotal:          "Gesamt für {qty} Gäste: ₹{total}. Sollen wir zur sicheren Zahlung übergehen?",
			KeyConfirmPay:     "Bestätigen & Bezahlen",
			KeyCancel:         "Stornieren",
			KeySignIn:         "Bitte melden Sie sich mit Google an, um Ihre Buchung abzuschließen.",
			KeySignInBtn:      "Mit Google anmelden",
			KeyPaying:         "Weiterleitung zu unserem sicheren Gateway...",
			KeySuccess:        "Zahlung erfolgreich! Ihr digitaler goldener Schlüssel wurde an Ihre E-Mail gesendet.",
			KeyConfirmed:      "Buchung bestätigt",
			KeyError:          "Entschuldigung, es gab ein Problem bei der Sicherung Ihrer Buchung. Bitte versuchen Sie es erneut.",
			KeyCancelled:      "Zahlung storniert oder abgelehnt. Es wurden keine Tickets gebucht.",
			KeyNoted:          "Kein Problem. Ihre Buchung wurde storniert. Wie kann ich Ihnen sonst noch helfen?",
			KeyReopen:         "Diese Sitzung ist beendet. Um eine neue Buchung zu starten, öffnen Sie bitte den Concierge erneut.",
			KeySoldOut:        "Entschuldigung, {type} ist für den {date} ausgebucht. Bitte wählen Sie ein anderes Datum.",
			KeyGuestName:      "Wie lautet der vollständige Name von Gast #{index}?",
			KeyGuestGender:    "Welches Geschlecht hat {name}?",
			KeyGuestAge:       "Und wie alt ist {name}?",
			KeyAgeWarning:     "Bitte geben Sie ein gültiges Alter (Zahl) für {name} an.",
			KeyNotEnoughSpots: "Entschuldigung, es sind nur noch {available} Plätze frei. Bitte geben Sie eine Zahl zwischen 1 und {available} ein.",
			KeyInvalidNumber:  "Bitte geben Sie eine gültige Zahl für die Anzahl der Gäste ein.",
			KeyMore:           "Mehr",
		},
	},
	"Italian": {
		name:       "Italian",
		nativeName: "Italiano",
		iso:        "it",
		genders:    []string{"Maschio", "Femmina", "Altro"},
		messages: map[string]string{
			KeyWelcome:        "Benvenuto al Museum Concierge. Come posso assisterla oggi?",
			KeyStart:          "Inizia prenotazione",
			KeyLangSelect:     "In quale lingua preferirebbe continuare?",
			KeyExperience:     "Che tipo di esperienza sta cercando?",
			KeyDate:           "Scelta eccellente: {type}. Per quale data vorrebbe prenotare?",
			KeyGuests:         "Quanti ospiti saranno con noi oggi?",
			KeyTotal:          "Totale per {qty} ospiti: ₹{total}. Procediamo al pagamento sicuro?",
			KeyConfirmPay:     "Conferma e Paga",
			KeyCancel:         "Annulla",
			KeySignIn:         "Accedi con Google per completare la prenotazione.",
			KeySignInBtn:      "Accedi con Google",
			KeyPaying:         "Procedendo al nostro gateway sicuro...",
			KeySuccess:        "Pagamento riuscito! La tua chiave d'oro digitale è stata inviata alla tua email.",
			KeyConfirmed:      "Prenotazione confermata",
			KeyError:          "Mi scusi, c'è stato un problema nel garantire la tua prenotazione. Riprova.",
			KeyCancelled:      "Pagamento annullato o respinto. Nessun biglietto prenotato.",
			KeyNoted:          "Nessun problema. La tua prenotazione è stata annullata. Come posso aiutarti ancora?",
			KeyReopen:         "Questa sessione è terminata. Per avviare una nuova prenotazione, riapri il concierge.",
			KeySoldOut:        "Ci scusiamo, {type} è al completo per il {date}. Seleziona un'altra data.",
			KeyGuestName:      "Qual è il nome completo dell'ospite #{index}?",
			KeyGuestGender:    "Qual è il genere di {name}?",
			KeyGuestAge:       "E qual è l'età di {name}?",
			KeyAgeWarning:     "Inserisci un'età valida (numero) per {name}.",
			KeyNotEnoughSpots: "Mi dispiace, sono rimasti solo {available} posti. Inserisci un numero tra 1 e {available}.",
			KeyInvalidNumber:  "Inserisci un numero valido per il numero di ospiti.",
			KeyMore:           "Altro",
		},
	},
	"Japanese": {
		name:       "Japanese",
		nativeName: "日本語",
		iso:        "ja",
		genders:    []string{"男性", "女性", "その他"},
		messages: map[string]string{
			KeyWelcome:        "ミュージアムコンシェルジュへようこそ。今日はどのようなご用件でしょうか？",
			KeyStart:          "予約を開始",
			KeyLangSelect:     "どの言語で続行しますか？",
			KeyExperience:     "どのような体験をお探しですか？",
			KeyDate:           "素晴らしい選択です：{type}。どの日付で予約しますか？",
			KeyGuests:         "本日は何名様でいらっしゃいますか？",
			KeyTotal:          "{qty}名様の合計：₹{total}。安全な支払いに進みますか？",
			KeyConfirmPay:     "確認して支払う",
			KeyCancel:         "キャンセル",
			KeySignIn:         "予約を完了するには、Googleでサインインしてください。",
			KeySignInBtn:      "Googleでサインイン",
			KeyPaying:         "安全なゲートウェイに進んでいます...",
			KeySuccess:        "支払い成功！デジタルゴールデンキーがメールに送信されました。",
			KeyConfirmed:      "予約確認済み",
			KeyError:          "申し訳ありませんが、予約の確保に問題が発生しました。もう一度お試しください。",
			KeyCancelled:      "支払いがキャンセルまたは却下されました。チケットは予約されませんでした。",
			KeyReopen:         "このセッションは終了しました。新しい予約を開始するには、コンシェルジュを再度開いてください。",
			KeyNoted:          "問題ありません。予約はキャンセルされました。他にお手伝いできることはありますか？",
			KeySoldOut:        "申し訳ありませんが、{type}は{date}に満席です。別の日付を選択してください。",
			KeyGuestName:      "ゲスト#{index}のフルネームは何ですか？",
			KeyGuestGender:    "{name}の性別は何ですか？",
			KeyGuestAge:       "そして、{name}の年齢は何歳ですか？",
			KeyAgeWarning:     "{name}の有効な年齢（数字）を入力してください。",
			KeyNotEnoughSpots: "申し訳ありませんが、残りのスポットは{available}のみです。1から{available}の間の数字を入力してください。",
			KeyInvalidNumber:  "ゲスト数の有効な数字を入力してください。",
			KeyMore:           "もっと",
		},
	},
}
